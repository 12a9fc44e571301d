package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBackend implements Backend on BadgerDB. Keys are "<collection>:<id>".
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a BadgerDB at dir. An empty dir opens an in-memory
// database.
func OpenBadger(dir string) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return NewBadgerBackend(db), nil
}

// NewBadgerBackend wraps an already opened database.
func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func prefix(c Collection) []byte {
	return []byte(string(c) + ":")
}

func key(c Collection, id string) []byte {
	return []byte(string(c) + ":" + id)
}

func (b *BadgerBackend) Put(_ context.Context, c Collection, id string, doc []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(c, id), doc); err != nil {
			return fmt.Errorf("set %s/%s: %w", c, id, err)
		}
		return nil
	})
}

func (b *BadgerBackend) Get(_ context.Context, c Collection, id string) ([]byte, error) {
	var doc []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(c, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s/%s: %w", c, id, err)
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	return doc, err
}

func (b *BadgerBackend) Delete(_ context.Context, c Collection, id string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		k := key(c, id)
		if _, err := txn.Get(k); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get %s/%s: %w", c, id, err)
		}
		return txn.Delete(k)
	})
}

func (b *BadgerBackend) Scan(ctx context.Context, c Collection, reverse bool, fn func(id string, doc []byte) bool) error {
	p := prefix(c)
	return b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = p
		opts.Reverse = reverse
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := p
		if reverse {
			// In reverse mode Seek finds the largest key <= seek.
			seek = append(append([]byte{}, p...), 0xFF)
		}

		for it.Seek(seek); it.ValidForPrefix(p); it.Next() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			item := it.Item()
			doc, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read %s: %w", item.Key(), err)
			}
			id := string(item.Key()[len(p):])
			if !fn(id, doc) {
				return nil
			}
		}
		return nil
	})
}

func (b *BadgerBackend) Count(_ context.Context, c Collection) (int, error) {
	p := prefix(c)
	n := 0
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = p
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func (b *BadgerBackend) Clear(_ context.Context, c Collection) (int, error) {
	p := prefix(c)
	var keys [][]byte
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = p
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(keys); start += clearChunk {
		chunk := keys[start:min(start+clearChunk, len(keys))]
		err := b.db.Update(func(txn *badger.Txn) error {
			for _, k := range chunk {
				if err := txn.Delete(k); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return start, fmt.Errorf("clear %s: %w", c, err)
		}
	}
	return len(keys), nil
}

// clearChunk keeps each delete transaction well below badger's txn size limit.
const clearChunk = 1000

func (b *BadgerBackend) Ping(context.Context) error {
	if b.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

func (b *BadgerBackend) Close() error {
	return b.db.Close()
}
