package storage

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ActivityRecord is the stored summary of one decoded activity file.
type ActivityRecord struct {
	ID              string         `json:"id"`
	FileName        string         `json:"file_name,omitempty"`
	UploadedAt      time.Time      `json:"uploaded_at"`
	ProtocolVersion byte           `json:"protocol_version"`
	ProfileVersion  uint16         `json:"profile_version"`
	DataSize        uint32         `json:"data_size"`
	Checksum        uint16         `json:"checksum"`
	MessageCount    int            `json:"message_count"`
	MessageCounts   map[string]int `json:"message_counts,omitempty"`
	StartTime       uint32         `json:"start_time,omitempty"`
	EndTime         uint32         `json:"end_time,omitempty"`
	Sport           string         `json:"sport,omitempty"`
}

// ActivityStore persists activity summaries in a local key-value store.
// Records are keyed by KSUID, so iteration order is creation order.
type ActivityStore struct {
	db *pebble.DB
}

func NewActivityStore(path string) (*ActivityStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &ActivityStore{db: db}, nil
}

// Put assigns the record a new ID and persists it.
func (s *ActivityStore) Put(rec *ActivityRecord) (*ksuid.KSUID, error) {
	id := ksuid.New()
	rec.ID = id.String()

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := s.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return nil, err
	}

	return &id, nil
}

// Get returns the record for id, or pebble.ErrNotFound.
func (s *ActivityStore) Get(id *ksuid.KSUID) (*ActivityRecord, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var rec ActivityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns up to limit records in creation order. A limit of zero or
// less means no limit.
func (s *ActivityStore) List(limit int) ([]*ActivityRecord, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var recs []*ActivityRecord
	for iter.First(); iter.Valid(); iter.Next() {
		if limit > 0 && len(recs) >= limit {
			break
		}
		var rec ActivityRecord
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *ActivityStore) Delete(id *ksuid.KSUID) error {
	return s.db.Delete(id.Bytes(), pebble.NoSync)
}

func (s *ActivityStore) Close() error {
	return s.db.Close()
}
