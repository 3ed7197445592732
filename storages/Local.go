// Package storages persists When values locally.
package storages

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"

	"github.com/brianjpetersen/when"
	"github.com/brianjpetersen/when/errs"
)

const ErrNotFound errs.Error = `no stored instant for the given id`

var bucketName = []byte(`whens`)

// NewLocal opens (or creates) a bolt-backed store of When values at path.
func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Local{db: db}, nil
}

// Local stores When values as gob payloads keyed by UUID.  The payloads
// carry the UTC-normalized tuple plus the view identifier, so a found value
// reads back through the same timezone it was saved with.
type Local struct {
	db *bolt.DB
}

// Close the local database and release the file lock
func (storage *Local) Close() error {
	return storage.db.Close()
}

// Save persists the instant and returns the id it was filed under.
func (storage *Local) Save(w *when.When) (string, error) {
	id := uuid.NewV4().String()
	value, err := encode(w)
	if err != nil {
		return "", err
	}
	err = storage.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(id), value)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Find retrieves a previously saved instant by id.
func (storage *Local) Find(id string) (*when.When, error) {
	var value []byte
	err := storage.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(id)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return decode(value)
}

// FindAll retrieves every stored instant.
func (storage *Local) FindAll() ([]*when.When, error) {
	var found []*when.When
	err := storage.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			w, err := decode(value)
			if err != nil {
				return err
			}
			found = append(found, w)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Delete removes a stored instant; deleting an unknown id is a no-op.
func (storage *Local) Delete(id string) error {
	return storage.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
}

func encode(w *when.When) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(value []byte) (*when.When, error) {
	w := new(when.When)
	if err := gob.NewDecoder(bytes.NewReader(value)).Decode(w); err != nil {
		return nil, err
	}
	return w, nil
}
