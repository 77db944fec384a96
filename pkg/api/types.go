package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/fitwire/pkg/storage"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port           int
	Bind           string
	APIKey         string
	DataDir        string
	StrictCRC      bool  // reject uploads whose file checksum does not match
	MaxUploadBytes int64 // cap on accepted activity file size
}

// IActivityStore defines the interface for activity persistence
type IActivityStore interface {
	Put(rec *storage.ActivityRecord) (*ksuid.KSUID, error)
	Get(id *ksuid.KSUID) (*storage.ActivityRecord, error)
	List(limit int) ([]*storage.ActivityRecord, error)
	Delete(id *ksuid.KSUID) error
}
