package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	// Pure-Go SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

const createMorphologiesTable = `
CREATE TABLE IF NOT EXISTS morphologies (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	seed       INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	sections   INTEGER NOT NULL,
	points     INTEGER NOT NULL,
	payload    BLOB NOT NULL
)`

type sqliteStore struct {
	db *sql.DB
}

func newSQLiteStore(path string) (*sqliteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createMorphologiesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create morphologies table: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Save(ctx context.Context, record m.MorphologyRecord) (string, error) {
	ensureID(&record)

	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record %s: %w", record.ID, err)
	}

	info := record.Info()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO morphologies (id, name, seed, created_at, sections, points, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			seed = excluded.seed,
			created_at = excluded.created_at,
			sections = excluded.sections,
			points = excluded.points,
			payload = excluded.payload
	`, info.ID, info.Name, info.Seed, info.CreatedAt.UTC().Format(time.RFC3339Nano), info.Sections, info.Points, payload)
	if err != nil {
		return "", fmt.Errorf("save record %s: %w", record.ID, err)
	}

	return record.ID, nil
}

func (s *sqliteStore) Load(ctx context.Context, id string) (m.MorphologyRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM morphologies WHERE id LIKE ? || '%'`, id)
	if err != nil {
		return m.MorphologyRecord{}, fmt.Errorf("query record %s: %w", id, err)
	}

	var ids []string
	for rows.Next() {
		var candidate string
		if err := rows.Scan(&candidate); err != nil {
			_ = rows.Close()
			return m.MorphologyRecord{}, err
		}
		ids = append(ids, candidate)
	}

	if err := rows.Close(); err != nil {
		return m.MorphologyRecord{}, err
	}

	match, err := matchID(ids, id)
	if err != nil {
		return m.MorphologyRecord{}, err
	}

	var payload []byte
	if err := s.db.QueryRowContext(ctx, `SELECT payload FROM morphologies WHERE id = ?`, match).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m.MorphologyRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return m.MorphologyRecord{}, err
	}

	var record m.MorphologyRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return m.MorphologyRecord{}, fmt.Errorf("decode record %s: %w", match, err)
	}

	return record, nil
}

func (s *sqliteStore) List(ctx context.Context) ([]m.RecordInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, seed, created_at, sections, points
		FROM morphologies`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var infos []m.RecordInfo
	for rows.Next() {
		var (
			info      m.RecordInfo
			createdAt string
		)
		if err := rows.Scan(&info.ID, &info.Name, &info.Seed, &createdAt, &info.Sections, &info.Points); err != nil {
			return nil, err
		}

		if info.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", info.ID, err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortInfos(infos)

	return infos, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
