package adapter

import (
	"context"
	"sync"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// MemoryStore keeps records in memory for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]m.MorphologyRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]m.MorphologyRecord)}
}

// Save stores the record.
func (s *MemoryStore) Save(_ context.Context, record m.MorphologyRecord) (string, error) {
	ensureID(&record)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.ID] = record

	return record.ID, nil
}

// Load returns the record matching id.
func (s *MemoryStore) Load(_ context.Context, id string) (m.MorphologyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for candidate := range s.records {
		ids = append(ids, candidate)
	}

	match, err := matchID(ids, id)
	if err != nil {
		return m.MorphologyRecord{}, err
	}

	return s.records[match], nil
}

// List returns every stored record.
func (s *MemoryStore) List(_ context.Context) ([]m.RecordInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]m.RecordInfo, 0, len(s.records))
	for _, record := range s.records {
		infos = append(infos, record.Info())
	}

	sortInfos(infos)

	return infos, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
