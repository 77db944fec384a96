package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/fitwire/pkg/fit"
	"github.com/ssargent/fitwire/pkg/profile"
	"github.com/ssargent/fitwire/pkg/storage"
)

// Server holds the API server state
type Server struct {
	store   IActivityStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(store IActivityStore, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleUploadActivity decodes an uploaded activity file and stores its
// summary. The raw file is not retained.
func (s *Server) handleUploadActivity(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Activity file exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	rec, err := s.decodeActivity(body, r.Header.Get("X-File-Name"))
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid activity file: %v", err), http.StatusBadRequest)
		return
	}

	if _, err := s.store.Put(rec); err != nil {
		s.metrics.RecordStoreOperation("put", false)
		sendError(w, fmt.Sprintf("Failed to store activity: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordStoreOperation("put", true)

	sendSuccess(w, rec)
}

// decodeActivity runs one decode pass over data and reduces the message
// stream to a stored summary.
func (s *Server) decodeActivity(data []byte, fileName string) (*storage.ActivityRecord, error) {
	start := time.Now()

	rec := &storage.ActivityRecord{
		FileName:      fileName,
		UploadedAt:    time.Now().UTC(),
		MessageCounts: make(map[string]int),
	}

	var opts []fit.Option
	if s.config.StrictCRC {
		opts = append(opts, fit.WithStrictCRC())
	}

	dec := fit.NewDecoder(bytes.NewReader(data), opts...)
	header, err := dec.Decode(func(m fit.Message) {
		rec.MessageCount++
		rec.MessageCounts[profile.MesgName(m.GlobalMsgNum)]++

		if m.Timestamp != 0 {
			if rec.StartTime == 0 || m.Timestamp < rec.StartTime {
				rec.StartTime = m.Timestamp
			}
			if m.Timestamp > rec.EndTime {
				rec.EndTime = m.Timestamp
			}
		}

		switch m.GlobalMsgNum {
		case profile.MesgNumSport:
			for _, f := range m.Fields {
				if f.FieldNum == 0 {
					rec.Sport = profile.SportName(f.Uint8())
				}
			}
		case profile.MesgNumSession:
			for _, f := range m.Fields {
				if f.FieldNum == 5 && rec.Sport == "" {
					rec.Sport = profile.SportName(f.Uint8())
				}
			}
		}
	})
	if err != nil {
		s.metrics.RecordDecode(false, rec.MessageCount, int64(len(data)), time.Since(start))
		return nil, err
	}

	rec.ProtocolVersion = header.ProtocolVersion()
	rec.ProfileVersion = header.ProfileVersion()
	rec.DataSize = header.DataSize()
	rec.Checksum = dec.Checksum()

	s.metrics.RecordDecode(true, rec.MessageCount, int64(len(data)), time.Since(start))
	return rec, nil
}

// handleGetActivity returns one stored activity summary.
func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid activity ID", http.StatusBadRequest)
		return
	}

	rec, err := s.store.Get(&id)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			s.metrics.RecordStoreOperation("get", false)
			sendError(w, "Activity not found", http.StatusNotFound)
			return
		}
		s.metrics.RecordStoreOperation("get", false)
		sendError(w, fmt.Sprintf("Failed to read activity: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordStoreOperation("get", true)
	sendSuccess(w, rec)
}

// handleListActivities returns stored activity summaries, newest last.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			sendError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	recs, err := s.store.List(limit)
	if err != nil {
		s.metrics.RecordStoreOperation("list", false)
		sendError(w, fmt.Sprintf("Failed to list activities: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordStoreOperation("list", true)
	sendSuccess(w, map[string]interface{}{
		"activities": recs,
		"count":      len(recs),
	})
}

// handleDeleteActivity removes one stored activity summary.
func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid activity ID", http.StatusBadRequest)
		return
	}

	if err := s.store.Delete(&id); err != nil {
		s.metrics.RecordStoreOperation("delete", false)
		sendError(w, fmt.Sprintf("Failed to delete activity: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordStoreOperation("delete", true)
	sendSuccess(w, map[string]string{"message": "Activity deleted"})
}
