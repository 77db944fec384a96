package api

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fitwire/pkg/fit"
	"github.com/ssargent/fitwire/pkg/storage"
)

// fakeStore is an in-memory IActivityStore for handler tests.
type fakeStore struct {
	recs map[string]*storage.ActivityRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: make(map[string]*storage.ActivityRecord)}
}

func (s *fakeStore) Put(rec *storage.ActivityRecord) (*ksuid.KSUID, error) {
	id := ksuid.New()
	rec.ID = id.String()
	s.recs[rec.ID] = rec
	return &id, nil
}

func (s *fakeStore) Get(id *ksuid.KSUID) (*storage.ActivityRecord, error) {
	rec, ok := s.recs[id.String()]
	if !ok {
		return nil, pebble.ErrNotFound
	}
	return rec, nil
}

func (s *fakeStore) List(limit int) ([]*storage.ActivityRecord, error) {
	var recs []*storage.ActivityRecord
	for _, rec := range s.recs {
		if limit > 0 && len(recs) >= limit {
			break
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (s *fakeStore) Delete(id *ksuid.KSUID) error {
	delete(s.recs, id.String())
	return nil
}

// Prometheus collectors register globally, so the whole test binary shares
// one Metrics instance.
var testMetrics = NewMetrics()

func newTestServer(store IActivityStore) *Server {
	return NewServer(store, ServerConfig{MaxUploadBytes: 1 << 20}, testMetrics)
}

// sampleActivity builds a minimal valid activity file: one definition and one
// data record carrying a timestamp and a heart rate value.
func sampleActivity(t *testing.T) []byte {
	t.Helper()

	var body []byte
	// definition: local 0, global 20 (Record), fields 253/uint32 and 3/uint8
	body = append(body, 0x40, 0x00, 0x00, 20, 0, 2,
		253, 4, 0x86,
		3, 1, 0x02)
	// data: timestamp 1000, heart rate 150
	body = append(body, 0x00, 0xe8, 0x03, 0x00, 0x00, 150)

	file := []byte{14, 0x20, 0x5e, 0x08}
	file = binary.LittleEndian.AppendUint32(file, uint32(len(body)+2))
	file = append(file, '.', 'F', 'I', 'T', 0x00, 0x00)
	file = append(file, body...)
	return binary.LittleEndian.AppendUint16(file, fit.CRC16(body))
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleUploadActivity(t *testing.T) {
	store := newFakeStore()
	server := newTestServer(store)

	req := httptest.NewRequest("POST", "/api/v1/activities", bytes.NewReader(sampleActivity(t)))
	req.Header.Set("X-File-Name", "run.fit")
	w := httptest.NewRecorder()

	server.handleUploadActivity(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	require.Len(t, store.recs, 1)
	for _, rec := range store.recs {
		assert.Equal(t, "run.fit", rec.FileName)
		assert.Equal(t, 1, rec.MessageCount)
		assert.Equal(t, 1, rec.MessageCounts["Record"])
		assert.Equal(t, byte(0x20), rec.ProtocolVersion)
		assert.NotZero(t, rec.StartTime)
		assert.Equal(t, rec.StartTime, rec.EndTime)
	}
}

func TestHandleUploadActivity_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body []byte
	}{
		{name: "empty body", body: nil},
		{name: "bad signature", body: []byte{14, 0x20, 0x5e, 0x08, 2, 0, 0, 0, 'G', 'A', 'R', 'B', 0, 0}},
		{name: "truncated records", body: sampleActivity(t)[:20]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			server := newTestServer(store)

			req := httptest.NewRequest("POST", "/api/v1/activities", bytes.NewReader(tc.body))
			w := httptest.NewRecorder()

			server.handleUploadActivity(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Empty(t, store.recs)
		})
	}
}

func TestHandleUploadActivity_TooLarge(t *testing.T) {
	server := NewServer(newFakeStore(), ServerConfig{MaxUploadBytes: 8}, testMetrics)

	req := httptest.NewRequest("POST", "/api/v1/activities", bytes.NewReader(sampleActivity(t)))
	w := httptest.NewRecorder()

	server.handleUploadActivity(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleUploadActivity_StrictCRC(t *testing.T) {
	server := NewServer(newFakeStore(), ServerConfig{MaxUploadBytes: 1 << 20, StrictCRC: true}, testMetrics)

	good := sampleActivity(t)
	req := httptest.NewRequest("POST", "/api/v1/activities", bytes.NewReader(good))
	w := httptest.NewRecorder()
	server.handleUploadActivity(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	bad := append([]byte(nil), good...)
	bad[len(bad)-1] ^= 0xff
	req = httptest.NewRequest("POST", "/api/v1/activities", bytes.NewReader(bad))
	w = httptest.NewRecorder()
	server.handleUploadActivity(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetActivity(t *testing.T) {
	store := newFakeStore()
	server := newTestServer(store)

	id, err := store.Put(&storage.ActivityRecord{MessageCount: 3})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/activities/"+id.String(), nil)
		w := httptest.NewRecorder()

		routeWithID(server.handleGetActivity, id.String()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("not found", func(t *testing.T) {
		missing := ksuid.New().String()
		req := httptest.NewRequest("GET", "/api/v1/activities/"+missing, nil)
		w := httptest.NewRecorder()

		routeWithID(server.handleGetActivity, missing).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/activities/not-a-ksuid", nil)
		w := httptest.NewRecorder()

		routeWithID(server.handleGetActivity, "not-a-ksuid").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// routeWithID binds the chi URL parameter the handler reads.
func routeWithID(handler http.HandlerFunc, id string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		handler(w, r)
	})
}

func TestHandleListActivities(t *testing.T) {
	store := newFakeStore()
	server := newTestServer(store)

	for i := 0; i < 3; i++ {
		_, err := store.Put(&storage.ActivityRecord{MessageCount: i})
		require.NoError(t, err)
	}

	req := httptest.NewRequest("GET", "/api/v1/activities", nil)
	w := httptest.NewRecorder()
	server.handleListActivities(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["count"])
}

func TestHandleListActivities_BadLimit(t *testing.T) {
	server := newTestServer(newFakeStore())

	req := httptest.NewRequest("GET", "/api/v1/activities?limit=nope", nil)
	w := httptest.NewRecorder()
	server.handleListActivities(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteActivity(t *testing.T) {
	store := newFakeStore()
	server := newTestServer(store)

	id, err := store.Put(&storage.ActivityRecord{})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/v1/activities/"+id.String(), nil)
	w := httptest.NewRecorder()
	routeWithID(server.handleDeleteActivity, id.String()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.recs)
}
