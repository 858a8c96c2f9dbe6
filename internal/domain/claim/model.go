package claim

import (
	"time"

	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
)

type ClaimStatus string

const (
	StatusDraft    ClaimStatus = "draft"
	StatusEmployee ClaimStatus = "employee"
	StatusHR       ClaimStatus = "hr"
	StatusInsurer  ClaimStatus = "insurer"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
)

type ClaimType string

const (
	TypeLife    ClaimType = "life"
	TypeVehicle ClaimType = "vehicle"
)

// Claim is a claim as owned by the backend, with its questionnaire embedded
// when fetched individually.
type Claim struct {
	ID              string                         `json:"id"`
	PolicyID        string                         `json:"policyId"`
	EmployeeID      string                         `json:"employeeId"`
	ClaimType       ClaimType                      `json:"claimType"`
	ClaimOption     string                         `json:"claimOption"`
	Status          ClaimStatus                    `json:"status"`
	RequestedAmount float64                        `json:"requestedAmount"`
	ApprovedAmount  *float64                       `json:"approvedAmount,omitempty"`
	Reason          string                         `json:"reason,omitempty"`
	SubmittedAt     *time.Time                     `json:"submittedAt,omitempty"`
	ForwardedAt     *time.Time                     `json:"forwardedAt,omitempty"`
	FinalizedAt     *time.Time                     `json:"finalizedAt,omitempty"`
	CreatedAt       time.Time                      `json:"createdAt"`
	UpdatedAt       time.Time                      `json:"updatedAt"`
	Questionnaire   *questionnaire.Questionnaire   `json:"questionnaire,omitempty"`
}

// Editable reports whether the claimant may still change answers.
func (c *Claim) Editable() bool {
	return c.Status == StatusDraft || c.Status == StatusEmployee
}

func (s ClaimStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// transitions holds the legal status moves. draft->employee belongs to the
// claimant; the rest belong to HR and the insurer.
var transitions = map[ClaimStatus][]ClaimStatus{
	StatusDraft:    {StatusEmployee},
	StatusEmployee: {StatusHR, StatusRejected},
	StatusHR:       {StatusInsurer, StatusEmployee, StatusRejected},
	StatusInsurer:  {StatusApproved, StatusRejected, StatusHR},
}

// CanTransition reports whether moving from s to next is legal.
func (s ClaimStatus) CanTransition(next ClaimStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	switch ClaimStatus(s) {
	case StatusDraft, StatusEmployee, StatusHR, StatusInsurer, StatusApproved, StatusRejected:
		return true
	}
	return false
}
