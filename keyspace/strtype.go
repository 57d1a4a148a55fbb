package keyspace

var (
	_ DataType = stringType{}
)

// StringType is the native string kind. Values are []byte.
var StringType DataType = stringType{}

type stringType struct{}

func (stringType) Name() string {
	return "string"
}

func (stringType) Encode(value any) ([]byte, error) {
	return append([]byte(nil), value.([]byte)...), nil
}

func (stringType) Decode(data []byte) (any, error) {
	return append([]byte(nil), data...), nil
}

func (stringType) Dup(value any) any {
	return append([]byte(nil), value.([]byte)...)
}

func (stringType) Free(any) {}
