package claims

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrClaimNotFound  = errors.New("claim not found")
	ErrInvalidStatus  = errors.New("invalid claim status")
	ErrInvalidRequest = errors.New("invalid claim request")
)

// FileStore persists uploaded policy files and returns the stored path.
type FileStore interface {
	Save(ctx context.Context, name string, data io.Reader) (string, error)
}

// Service implements the upload, claim, and progress operations over the
// in-memory store.
type Service struct {
	logger   *slog.Logger
	store    *Store
	files    FileStore
	validate *validator.Validate
}

func NewService(log *slog.Logger, store *Store, files FileStore) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		logger:   log.With(slog.String("service", "claims")),
		store:    store,
		files:    files,
		validate: validator.New(),
	}
}

// CreateUpload persists a policy file and records it. Any extension is
// accepted; no MIME validation is performed.
func (s *Service) CreateUpload(ctx context.Context, filename string, data io.Reader) (UploadRecord, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		filename = "policy.bin"
	}
	id := s.store.NextUploadID()
	path, err := s.files.Save(ctx, id+"_"+filename, data)
	if err != nil {
		return UploadRecord{}, fmt.Errorf("save policy file: %w", err)
	}
	rec := UploadRecord{ID: id, Filename: filename, Path: path}
	s.store.PutUpload(rec)
	s.logger.Info("policy uploaded",
		slog.String("upload_id", rec.ID),
		slog.String("filename", rec.Filename),
	)
	return rec, nil
}

// StartClaim opens a claim for a previously uploaded policy. The upload id
// must reference an existing record or the call fails with
// ErrUploadNotFound.
func (s *Service) StartClaim(ctx context.Context, req StartClaimRequest) (ClaimRecord, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return ClaimRecord{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if _, ok := s.store.GetUpload(req.PolicyID); !ok {
		return ClaimRecord{}, fmt.Errorf("%w: %s", ErrUploadNotFound, req.PolicyID)
	}
	rec := ClaimRecord{
		ID:           s.store.NextClaimID(),
		UploadID:     req.PolicyID,
		ClaimantName: strings.TrimSpace(req.Name),
		IncidentDate: req.IncidentDate,
		Summary:      strings.TrimSpace(req.Summary),
		Status:       StatusReceived,
		NextSteps:    DefaultNextSteps(),
	}
	s.store.PutClaim(rec)
	s.logger.Info("claim started",
		slog.String("claim_id", rec.ID),
		slog.String("upload_id", rec.UploadID),
	)
	return rec, nil
}

// GetProgress returns the current status and remaining steps of a claim.
func (s *Service) GetProgress(ctx context.Context, claimID string) (Progress, error) {
	rec, ok := s.store.GetClaim(strings.TrimSpace(claimID))
	if !ok {
		return Progress{}, fmt.Errorf("%w: %s", ErrClaimNotFound, claimID)
	}
	return Progress{ClaimID: rec.ID, Status: rec.Status, NextSteps: rec.NextSteps}, nil
}

// UpdateProgress sets a claim's status unconditionally. Values outside the
// status enum fail with ErrInvalidStatus and leave the claim untouched; no
// transition ordering is enforced.
func (s *Service) UpdateProgress(ctx context.Context, claimID, rawStatus string) (Progress, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return Progress{}, err
	}
	rec, ok := s.store.UpdateClaimStatus(strings.TrimSpace(claimID), status)
	if !ok {
		return Progress{}, fmt.Errorf("%w: %s", ErrClaimNotFound, claimID)
	}
	s.logger.Info("claim status updated",
		slog.String("claim_id", rec.ID),
		slog.String("status", string(rec.Status)),
	)
	return Progress{ClaimID: rec.ID, Status: rec.Status, NextSteps: rec.NextSteps}, nil
}
