// Package reconcile keeps a local journal of outcomes that need an operator:
// commits whose result could not be observed and post-commit side effects
// that failed. Entries live in a BoltDB file so they survive restarts and do
// not depend on the database they describe.
package reconcile

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"
)

const bucketName = "reconcile"

type Kind string

const (
	KindCommitUnknown Kind = "commit_unknown"
	KindSideEffect    Kind = "side_effect"
)

var ErrNotFound = errors.New("journal entry not found")

type Entry struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Command    string     `json:"command"`
	Subject    string     `json:"subject"`
	Error      string     `json:"error"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func (e *Entry) Resolved() bool {
	return e.ResolvedAt != nil
}

type Journal struct {
	db *bolt.DB
}

// Open opens or creates the journal file at path.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores entry. A missing ID or timestamp is filled in; recording an
// ID twice keeps the first entry.
func (j *Journal) Record(entry Entry) (*Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var result Entry
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if existing := b.Get([]byte(entry.ID)); existing != nil {
			return json.Unmarshal(existing, &result)
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		result = entry
		return b.Put([]byte(entry.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns entries oldest first. Resolved entries are skipped unless
// all is set.
func (j *Journal) List(all bool) ([]Entry, error) {
	entries := []Entry{}
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			if all || !e.Resolved() {
				entries = append(entries, e)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].CreatedAt.Before(entries[b].CreatedAt)
	})
	return entries, nil
}

// Resolve marks the entry handled. Resolving twice keeps the first time.
func (j *Journal) Resolve(id string) (*Entry, error) {
	var result Entry
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		v := b.Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(v, &result); err != nil {
			return err
		}
		if result.Resolved() {
			return nil
		}
		now := time.Now().UTC()
		result.ResolvedAt = &now
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
