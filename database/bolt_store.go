package database

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var widgetBucket = []byte("widgets")

// BoltStore keeps serialized widget records in a bbolt file, one key per
// widget. It satisfies prefs.Backend.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (or creates) the bbolt file at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(widgetBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create widget bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Load returns the stored record for key. ok is false when it does not exist.
func (s *BoltStore) Load(key string) (value string, ok bool, err error) {
	if key == "" {
		return "", false, errors.New("empty record key")
	}

	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(widgetBucket)
		if b == nil {
			return nil
		}
		// Bytes returned by Get are only valid inside the transaction.
		if data := b.Get([]byte(key)); data != nil {
			value, ok = string(data), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to load record %s: %w", key, err)
	}
	return value, ok, nil
}

// Save replaces the record for key.
func (s *BoltStore) Save(key, value string) error {
	if key == "" {
		return errors.New("empty record key")
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(widgetBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key if it exists.
func (s *BoltStore) Remove(key string) error {
	if key == "" {
		return errors.New("empty record key")
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(widgetBucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

// Close releases the bbolt file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
