package claims

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	uploadIDPrefix = "upl"
	claimIDPrefix  = "clm"
)

// Store is the in-memory record store. It is constructed at process start
// and injected into the service; contents live for the process lifetime and
// are not persisted across restarts. All operations take the store mutex,
// so the hosting server may dispatch requests concurrently.
type Store struct {
	mu      sync.Mutex
	uploads map[string]UploadRecord
	claims  map[string]ClaimRecord
}

func NewStore() *Store {
	return &Store{
		uploads: make(map[string]UploadRecord),
		claims:  make(map[string]ClaimRecord),
	}
}

// newID builds a short opaque token: prefix, underscore, eight hex chars.
// Uniqueness within the process is the contract, not unpredictability.
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// NextUploadID reserves nothing; it returns an id not currently held by any
// upload record, regenerating on the (unlikely) collision.
func (s *Store) NextUploadID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		id := newID(uploadIDPrefix)
		if _, ok := s.uploads[id]; !ok {
			return id
		}
	}
}

// NextClaimID returns a claim id unique among stored claims.
func (s *Store) NextClaimID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		id := newID(claimIDPrefix)
		if _, ok := s.claims[id]; !ok {
			return id
		}
	}
}

func (s *Store) PutUpload(rec UploadRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[rec.ID] = rec
}

func (s *Store) GetUpload(id string) (UploadRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.uploads[id]
	return rec, ok
}

func (s *Store) PutClaim(rec ClaimRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[rec.ID] = rec
}

func (s *Store) GetClaim(id string) (ClaimRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.claims[id]
	return rec, ok
}

// UpdateClaimStatus swaps the status of an existing claim and returns the
// updated record. The second return value is false when the claim is
// unknown.
func (s *Store) UpdateClaimStatus(id string, status Status) (ClaimRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.claims[id]
	if !ok {
		return ClaimRecord{}, false
	}
	rec.Status = status
	s.claims[id] = rec
	return rec, true
}
