package keyspace

const (
	TypeNameSize = 9 // registered type names are fixed width

	KeyRecord       = "keyspace.key[%s]"
	KeyRecordPrefix = "keyspace.key["
	KeyRecordSuffix = "]"
)
