// Released under an MIT license. See LICENSE.

// Package history stores the lines entered in interactive sessions.
package history

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucket = "history"

// Entry is a numbered history entry.
type Entry struct {
	Seq  int
	Text string
}

// T (history) is a history store backed by a bbolt database.
type T struct {
	db *bolt.DB
}

// Open opens, creating if necessary, the history database at path.
func Open(path string) (*T, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))

		return err
	})
	if err != nil {
		db.Close()

		return nil, err
	}

	return &T{db: db}, nil
}

// Add appends text to the history and returns its sequence number.
func (h *T) Add(text string) (int, error) {
	var seq uint64

	err := h.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))

		var err error

		seq, err = b.NextSequence()
		if err != nil {
			return err
		}

		return b.Put(marshalSeq(seq), []byte(text))
	})

	return int(seq), err
}

// Close closes the database.
func (h *T) Close() error {
	return h.db.Close()
}

// Recent returns, oldest first, at most n of the most recent entries.
func (h *T) Recent(n int) ([]Entry, error) {
	var entries []Entry

	err := h.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucket)).Cursor()

		for k, v := c.Last(); k != nil && len(entries) < n; k, v = c.Prev() {
			entries = append(entries, Entry{Seq: int(unmarshalSeq(k)), Text: string(v)})
		}

		return nil
	})

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)

	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
