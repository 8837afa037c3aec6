/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package catalog

import (
	"encoding/binary"
	"encoding/json"

	bolt "go.etcd.io/bbolt"
)

const metaBucketName = "meta"

// One persisted catalog row per object: schema rows and schema-object rows
// share the bucket, keyed by the global object id.
type metaRecord struct {
	Kind   string `json:"kind"`
	Schema string `json:"schema,omitempty"`
	Name   string `json:"name"`
}

type metaStore struct {
	db *bolt.DB
}

func openMetaStore(path string) (*metaStore, error) {
	db, err := bolt.Open(path, 0o600, bolt.DefaultOptions)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists([]byte(metaBucketName))
		return e
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &metaStore{db: db}, nil
}

func (m *metaStore) close() error {
	return m.db.Close()
}

func (m *metaStore) put(id int, rec metaRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(metaBucketName)).Put(metaKey(id), data)
	})
}

func (m *metaStore) delete(id int) error {
	return m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(metaBucketName)).Delete(metaKey(id))
	})
}

func (m *metaStore) get(id int) (rec metaRecord, ok bool, err error) {
	err = m.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(metaBucketName)).Get(metaKey(id))
		if data == nil {
			return nil
		}
		ok = true
		return json.Unmarshal(data, &rec)
	})
	return rec, ok, err
}

func metaKey(id int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}
