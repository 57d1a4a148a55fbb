package keyspace

import (
	"fmt"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	_ Store = &StoreT{}
)

type StoreT struct {
	ptr *leveldb.DB
}

func NewStore(path string) (*StoreT, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %q: %w", path, err)
	}
	return &StoreT{ptr: db}, nil
}

// NewMemStore is a store backed by in-memory LevelDB storage.
func NewMemStore() (*StoreT, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &StoreT{ptr: db}, nil
}

func (db *StoreT) Load(fn func(name string, record []byte) error) error {
	iter := db.ptr.NewIterator(util.BytesPrefix([]byte(KeyRecordPrefix)), nil)
	defer iter.Release()

	for iter.Next() {
		name, ok := parseKeyRecord(iter.Key())
		if !ok {
			continue
		}
		record := append([]byte(nil), iter.Value()...)
		if err := fn(name, record); err != nil {
			return err
		}
	}

	return iter.Error()
}

func (db *StoreT) Apply(puts map[string][]byte, dels []string) error {
	batch := new(leveldb.Batch)
	for name, record := range puts {
		batch.Put(getKeyRecord(name), record)
	}
	for _, name := range dels {
		batch.Delete(getKeyRecord(name))
	}
	return db.ptr.Write(batch, nil)
}

func (db *StoreT) Replace(all map[string][]byte) error {
	batch := new(leveldb.Batch)

	iter := db.ptr.NewIterator(util.BytesPrefix([]byte(KeyRecordPrefix)), nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	for name, record := range all {
		batch.Put(getKeyRecord(name), record)
	}
	return db.ptr.Write(batch, nil)
}

func (db *StoreT) Close() error {
	return db.ptr.Close()
}

func getKeyRecord(name string) []byte {
	return []byte(fmt.Sprintf(KeyRecord, name))
}

func parseKeyRecord(key []byte) (string, bool) {
	s := string(key)
	if !strings.HasPrefix(s, KeyRecordPrefix) || !strings.HasSuffix(s, KeyRecordSuffix) {
		return "", false
	}
	return s[len(KeyRecordPrefix) : len(s)-len(KeyRecordSuffix)], true
}
