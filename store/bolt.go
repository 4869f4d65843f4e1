package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tally/internal/osutil"
)

const documentBucket = "documents"

const defaultLockTimeout = 1 * time.Second

// Bolt stores documents in a BoltDB file, keyed by document name. The
// database is opened for each operation so that other instances (such as
// `tally status`) can read it while the widget is running.
type Bolt struct {
	Path    string
	Timeout time.Duration
}

// open creates or opens the database and locks it.
func (b Bolt) open(readOnly bool) (*bolt.DB, error) {
	if b.Path == "" {
		return nil, ErrInvalidPath.Fmt("empty database path")
	}

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}

	if !readOnly {
		err := os.MkdirAll(filepath.Dir(b.Path), osutil.DirPermission)
		if err != nil {
			return nil, classify(err)
		}
	}

	db, err := bolt.Open(
		b.Path,
		osutil.DBPermission,
		&bolt.Options{Timeout: timeout, ReadOnly: readOnly},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrLocked.Wrap(err)
		}

		return nil, classify(err)
	}

	return db, nil
}

// Save stores the document under name.
func (b Bolt) Save(ctx context.Context, name string, doc *Document) error {
	if err := ValidName(name); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := Encode(doc)
	if err != nil {
		return ErrMalformed.Wrap(err)
	}

	db, err := b.open(false)
	if err != nil {
		return err
	}

	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(documentBucket))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(name), value)
	})
	if err != nil {
		return ErrIO.Wrap(err)
	}

	return nil
}

// Load retrieves the document stored under name.
func (b Bolt) Load(ctx context.Context, name string) (*Document, error) {
	if err := ValidName(name); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if b.Path == "" {
		return nil, ErrInvalidPath.Fmt("empty database path")
	}

	// a read-only open cannot create the file
	if _, err := os.Stat(b.Path); err != nil {
		return nil, classify(err)
	}

	db, err := b.open(true)
	if err != nil {
		return nil, err
	}

	defer db.Close()

	var value []byte

	err = db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(documentBucket))
		if bucket == nil {
			return nil
		}

		// the slice is only valid for the life of the transaction
		if v := bucket.Get([]byte(name)); v != nil {
			value = append([]byte(nil), v...)
		}

		return nil
	})
	if err != nil {
		return nil, ErrIO.Wrap(err)
	}

	if value == nil {
		return nil, ErrNotFound.Wrap(errors.New(name))
	}

	return Decode(value)
}
