package claims_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/claimmate/claimmate/internal/claims"
)

// memFileStore is an in-memory FileStore; failErr makes Save fail.
type memFileStore struct {
	saved   map[string]string
	failErr error
}

func newMemFileStore() *memFileStore {
	return &memFileStore{saved: make(map[string]string)}
}

func (m *memFileStore) Save(_ context.Context, name string, data io.Reader) (string, error) {
	if m.failErr != nil {
		return "", m.failErr
	}
	body, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	path := "mem://" + name
	m.saved[path] = string(body)
	return path, nil
}

func newTestService(files *memFileStore) *claims.Service {
	return claims.NewService(nil, claims.NewStore(), files)
}

func startClaimRequest(policyID string) claims.StartClaimRequest {
	return claims.StartClaimRequest{
		PolicyID:     policyID,
		Name:         "Alice",
		IncidentDate: "2024-01-01",
		Summary:      "car accident",
	}
}

func TestCreateUpload(t *testing.T) {
	t.Parallel()
	files := newMemFileStore()
	svc := newTestService(files)

	rec, err := svc.CreateUpload(context.Background(), "policy.pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("CreateUpload: %v", err)
	}
	if !strings.HasPrefix(rec.ID, "upl_") {
		t.Fatalf("upload id = %q, want upl_ prefix", rec.ID)
	}
	if rec.Filename != "policy.pdf" {
		t.Fatalf("filename = %q", rec.Filename)
	}
	if files.saved[rec.Path] != "pdf-bytes" {
		t.Fatalf("file body not persisted at %q", rec.Path)
	}
}

func TestCreateUpload_StorageFailure(t *testing.T) {
	t.Parallel()
	files := newMemFileStore()
	files.failErr = fmt.Errorf("disk full")
	svc := newTestService(files)

	if _, err := svc.CreateUpload(context.Background(), "policy.pdf", strings.NewReader("x")); err == nil {
		t.Fatal("CreateUpload should surface the storage failure")
	}
}

func TestStartClaim_UnknownUpload(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemFileStore())

	_, err := svc.StartClaim(context.Background(), startClaimRequest("upl_deadbeef"))
	if !errors.Is(err, claims.ErrUploadNotFound) {
		t.Fatalf("err = %v, want ErrUploadNotFound", err)
	}
}

func TestStartClaim_InvalidRequest(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemFileStore())

	req := startClaimRequest("upl_deadbeef")
	req.IncidentDate = "01/01/2024"
	_, err := svc.StartClaim(context.Background(), req)
	if !errors.Is(err, claims.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}

	req = startClaimRequest("upl_deadbeef")
	req.Name = ""
	if _, err := svc.StartClaim(context.Background(), req); !errors.Is(err, claims.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest for missing name", err)
	}
}

func TestClaimLifecycle(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemFileStore())
	ctx := context.Background()

	upload, err := svc.CreateUpload(ctx, "policy.pdf", strings.NewReader("pdf"))
	if err != nil {
		t.Fatalf("CreateUpload: %v", err)
	}

	claim, err := svc.StartClaim(ctx, startClaimRequest(upload.ID))
	if err != nil {
		t.Fatalf("StartClaim: %v", err)
	}
	if claim.Status != claims.StatusReceived {
		t.Fatalf("initial status = %q, want RECEIVED", claim.Status)
	}
	if len(claim.NextSteps) != 5 {
		t.Fatalf("next steps = %d, want 5", len(claim.NextSteps))
	}

	progress, err := svc.GetProgress(ctx, claim.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.Status != claims.StatusReceived || len(progress.NextSteps) != 5 {
		t.Fatalf("progress = %+v", progress)
	}

	updated, err := svc.UpdateProgress(ctx, claim.ID, "APPROVED")
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.Status != claims.StatusApproved {
		t.Fatalf("updated status = %q, want APPROVED", updated.Status)
	}

	progress, err = svc.GetProgress(ctx, claim.ID)
	if err != nil {
		t.Fatalf("GetProgress after update: %v", err)
	}
	if progress.Status != claims.StatusApproved {
		t.Fatalf("status after update = %q, want APPROVED", progress.Status)
	}
}

func TestUpdateProgress_InvalidStatusLeavesClaimUntouched(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemFileStore())
	ctx := context.Background()

	upload, err := svc.CreateUpload(ctx, "policy.pdf", strings.NewReader("pdf"))
	if err != nil {
		t.Fatalf("CreateUpload: %v", err)
	}
	claim, err := svc.StartClaim(ctx, startClaimRequest(upload.ID))
	if err != nil {
		t.Fatalf("StartClaim: %v", err)
	}

	_, err = svc.UpdateProgress(ctx, claim.ID, "SHIPPED")
	if !errors.Is(err, claims.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}

	progress, err := svc.GetProgress(ctx, claim.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.Status != claims.StatusReceived {
		t.Fatalf("status changed to %q after invalid update", progress.Status)
	}
}

func TestUpdateProgress_UnknownClaim(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemFileStore())

	_, err := svc.UpdateProgress(context.Background(), "clm_deadbeef", "APPROVED")
	if !errors.Is(err, claims.ErrClaimNotFound) {
		t.Fatalf("err = %v, want ErrClaimNotFound", err)
	}
	_, err = svc.GetProgress(context.Background(), "clm_deadbeef")
	if !errors.Is(err, claims.ErrClaimNotFound) {
		t.Fatalf("err = %v, want ErrClaimNotFound", err)
	}
}
