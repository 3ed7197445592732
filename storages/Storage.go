package storages

import "github.com/brianjpetersen/when"

// Storage is the common surface of the When stores.
type Storage interface {
	Save(w *when.When) (string, error)
	Find(id string) (*when.When, error)
	FindAll() ([]*when.When, error)
	Delete(id string) error
	Close() error
}

var (
	_ Storage = (*Local)(nil)
	_ Storage = (*Memory)(nil)
)
