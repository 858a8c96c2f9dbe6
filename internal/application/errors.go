package application

import (
	"errors"
	"fmt"
)

var (
	ErrSaveInProgress          = errors.New("a save is already in progress for this claim")
	ErrAtFirstSection          = errors.New("already at the first section")
	ErrAtFinalReview           = errors.New("already at the final review step")
	ErrReviewerRequired        = errors.New("reviewer role required")
	ErrClaimNotEditable        = errors.New("claim can no longer be edited")
	ErrNoQuestionnaire         = errors.New("claim has no questionnaire")
	ErrUnknownQuestion         = errors.New("unknown question")
	ErrQuestionnaireIncomplete = errors.New("complete all required questions before submitting")
	ErrUnknownClaimType        = errors.New("unknown claim type")
	ErrInvalidClaimOption      = errors.New("claim option not available for this claim type")
	ErrInvalidTransition       = errors.New("claim status transition not allowed")
	ErrReasonRequired          = errors.New("a reason is required to reject or return a claim")
	ErrPolicyNotClaimable      = errors.New("policy is not active")
	ErrNoActiveSession         = errors.New("no active questionnaire session for this claim")
)

// FieldError names one missing required question.
type FieldError struct {
	QuestionID string `json:"questionId"`
	Message    string `json:"message"`
}

// ValidationErrors is the locally-detected validation failure for one
// section: one entry per missing required question. It never reaches the
// network.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return fmt.Sprintf("question %s: %s", v[0].QuestionID, v[0].Message)
	}
	return fmt.Sprintf("%d required questions are missing answers", len(v))
}

// UploadError aborts a save when the document service rejects a file. It
// names the offending question so the stepper can surface it in place.
type UploadError struct {
	QuestionID string
	Err        error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload file for question %s: %v", e.QuestionID, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// SaveError is a failure of the answer-submission endpoint. Local drafts are
// untouched; the user retries the same action.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save answers: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// SubmitError is a failure of the final claim submission or the status
// update that follows it.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("failed to submit claim: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
