package claims

import (
	"fmt"
	"strings"
)

// Status is the processing state of a claim. Any status may follow any
// other; there is no transition graph.
type Status string

const (
	StatusReceived     Status = "RECEIVED"
	StatusChecking     Status = "CHECKING"
	StatusReview       Status = "REVIEW"
	StatusNeedMoreInfo Status = "NEED_MORE_INFO"
	StatusApproved     Status = "APPROVED"
	StatusRejected     Status = "REJECTED"
)

// ParseStatus validates a raw status value against the closed enum.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.TrimSpace(raw))
	switch status {
	case StatusReceived, StatusChecking, StatusReview, StatusNeedMoreInfo, StatusApproved, StatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// DefaultNextSteps returns the fixed ordered processing steps assigned to
// every new claim.
func DefaultNextSteps() []string {
	return []string{"資料檢核", "理賠初審", "複核/補件", "核賠", "撥款"}
}

// UploadRecord tracks one stored policy file. Immutable after creation and
// kept for the process lifetime.
type UploadRecord struct {
	ID       string `json:"upload_id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// ClaimRecord tracks one claim referencing an existing upload.
type ClaimRecord struct {
	ID           string   `json:"claim_id"`
	UploadID     string   `json:"upload_id"`
	ClaimantName string   `json:"name"`
	IncidentDate string   `json:"incident_date"`
	Summary      string   `json:"summary"`
	Status       Status   `json:"status"`
	NextSteps    []string `json:"next_steps"`
}

// StartClaimRequest is the input for opening a claim. PolicyID is the
// upload identifier returned by the policy upload.
type StartClaimRequest struct {
	PolicyID     string `json:"policy_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	IncidentDate string `json:"incident_date" validate:"required,datetime=2006-01-02"`
	Summary      string `json:"summary" validate:"required"`
}

// Progress is the queryable view of a claim's state.
type Progress struct {
	ClaimID   string   `json:"claim_id"`
	Status    Status   `json:"status"`
	NextSteps []string `json:"next_steps"`
}
