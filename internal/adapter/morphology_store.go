package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// Store kinds accepted by NewMorphologyStore.
const (
	StoreMemory = "memory"
	StoreFS     = "fs"
	StoreSQLite = "sqlite"
)

var (
	// ErrRecordNotFound is returned when no record matches an id.
	ErrRecordNotFound = errors.New("morphology record not found")
	// ErrAmbiguousID is returned when an id prefix matches several records.
	ErrAmbiguousID = errors.New("morphology record id is ambiguous")
)

// MorphologyStore persists grown morphologies.
type MorphologyStore interface {
	// Save stores the record, assigning an id when it has none, and
	// returns the id.
	Save(ctx context.Context, record m.MorphologyRecord) (string, error)
	// Load returns the record whose id equals or uniquely starts with id.
	Load(ctx context.Context, id string) (m.MorphologyRecord, error)
	// List returns the stored records, newest first.
	List(ctx context.Context) ([]m.RecordInfo, error)
	Close() error
}

// StoreConfig selects a store backend.
type StoreConfig struct {
	Kind string
	Path string
}

// StoreOpener opens the store described by a StoreConfig.
type StoreOpener func(cfg StoreConfig) (MorphologyStore, error)

// NewMorphologyStore opens a store of the given kind. Path is the output
// directory of the fs store and the database file of the sqlite store.
func NewMorphologyStore(cfg StoreConfig) (MorphologyStore, error) {
	switch cfg.Kind {
	case "", StoreFS:
		return newFSStore(cfg.Path)
	case StoreMemory:
		return NewMemoryStore(), nil
	case StoreSQLite:
		return newSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Kind)
	}
}

func ensureID(record *m.MorphologyRecord) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
}

// matchID resolves id against the known ids, exact match first.
func matchID(ids []string, id string) (string, error) {
	var found []string

	for _, candidate := range ids {
		if candidate == id {
			return candidate, nil
		}
		if strings.HasPrefix(candidate, id) {
			found = append(found, candidate)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d records", ErrAmbiguousID, id, len(found))
	}
}

func sortInfos(infos []m.RecordInfo) {
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.After(infos[j].CreatedAt)
		}
		return infos[i].ID < infos[j].ID
	})
}
