package model

import "time"

// MorphologyRecord is a grown morphology together with the inputs needed to
// reproduce it.
type MorphologyRecord struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Seed       int64       `json:"seed"`
	CreatedAt  time.Time   `json:"created_at"`
	Morphology *Morphology `json:"morphology"`
}

// RecordInfo is the listing entry of a stored record.
type RecordInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	Sections  int       `json:"sections"`
	Points    int       `json:"points"`
}

// Info returns the listing entry of the record.
func (r MorphologyRecord) Info() RecordInfo {
	info := RecordInfo{ID: r.ID, Name: r.Name, Seed: r.Seed, CreatedAt: r.CreatedAt}
	if r.Morphology != nil {
		info.Sections = len(r.Morphology.Sections)
		info.Points = r.Morphology.PointCount()
	}

	return info
}
