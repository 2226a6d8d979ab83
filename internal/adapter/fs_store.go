package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

const (
	recordExt = ".json"
	swcExt    = ".swc"
)

// fsStore writes every record as <id>.json next to its <id>.swc rendition.
type fsStore struct {
	dir string
}

func newFSStore(dir string) (*fsStore, error) {
	if dir == "" {
		return nil, errors.New("fs store directory is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	return &fsStore{dir: dir}, nil
}

func (s *fsStore) Save(ctx context.Context, record m.MorphologyRecord) (string, error) {
	ensureID(&record)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		payload, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("encode record %s: %w", record.ID, err)
		}

		return s.writeFile(ctx, record.ID+recordExt, payload)
	})

	g.Go(func() error {
		var buf bytes.Buffer
		if err := EncodeSWC(&buf, record.Name, record.Morphology); err != nil {
			return fmt.Errorf("encode swc %s: %w", record.ID, err)
		}

		return s.writeFile(ctx, record.ID+swcExt, buf.Bytes())
	})

	if err := g.Wait(); err != nil {
		return "", err
	}

	return record.ID, nil
}

func (s *fsStore) writeFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

func (s *fsStore) ids() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+recordExt))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(match), recordExt))
	}

	return ids, nil
}

func (s *fsStore) Load(_ context.Context, id string) (m.MorphologyRecord, error) {
	ids, err := s.ids()
	if err != nil {
		return m.MorphologyRecord{}, err
	}

	match, err := matchID(ids, id)
	if err != nil {
		return m.MorphologyRecord{}, err
	}

	return s.read(match)
}

func (s *fsStore) read(id string) (m.MorphologyRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, id+recordExt))
	if err != nil {
		return m.MorphologyRecord{}, fmt.Errorf("read record %s: %w", id, err)
	}

	var record m.MorphologyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return m.MorphologyRecord{}, fmt.Errorf("decode record %s: %w", id, err)
	}

	return record, nil
}

func (s *fsStore) List(ctx context.Context) ([]m.RecordInfo, error) {
	ids, err := s.ids()
	if err != nil {
		return nil, err
	}

	infos := make([]m.RecordInfo, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := s.read(id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, record.Info())
	}

	sortInfos(infos)

	return infos, nil
}

func (s *fsStore) Close() error {
	return nil
}
