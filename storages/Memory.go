package storages

import (
	"fmt"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/brianjpetersen/when"
)

// NewMemory builds a store backed by process memory, a drop-in stand-in for
// Local in tests and short-lived programs.
func NewMemory() *Memory {
	return &Memory{table: make(map[string][]byte)}
}

// Memory keeps the same gob payloads Local files away, so a found value
// reads back through the timezone view it was saved with here too.
type Memory struct {
	mutex sync.RWMutex
	table map[string][]byte
}

func (storage *Memory) Close() error {
	return nil
}

func (storage *Memory) Save(w *when.When) (string, error) {
	value, err := encode(w)
	if err != nil {
		return "", err
	}
	id := uuid.NewV4().String()
	storage.mutex.Lock()
	defer storage.mutex.Unlock()
	storage.table[id] = value
	return id, nil
}

func (storage *Memory) Find(id string) (*when.When, error) {
	storage.mutex.RLock()
	value, found := storage.table[id]
	storage.mutex.RUnlock()
	if !found {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return decode(value)
}

func (storage *Memory) FindAll() ([]*when.When, error) {
	storage.mutex.RLock()
	defer storage.mutex.RUnlock()
	var found []*when.When
	for _, value := range storage.table {
		w, err := decode(value)
		if err != nil {
			return nil, err
		}
		found = append(found, w)
	}
	return found, nil
}

func (storage *Memory) Delete(id string) error {
	storage.mutex.Lock()
	defer storage.mutex.Unlock()
	delete(storage.table, id)
	return nil
}
