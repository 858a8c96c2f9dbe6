package application

import (
	"context"
	"fmt"

	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/session"
)

type ClaimService struct {
	claims   client.ClaimsAPI
	catalog  *config.Catalog
	sessions *QuestionnaireService
}

func NewClaimService(claims client.ClaimsAPI, catalog *config.Catalog, sessions *QuestionnaireService) *ClaimService {
	return &ClaimService{claims: claims, catalog: catalog, sessions: sessions}
}

// StartClaim creates a draft claim for a policy + claim type + claim option
// and opens a questionnaire session for it.
func (s *ClaimService) StartClaim(ctx context.Context, sess session.Context, in claim.CreateClaimInput) (*claim.Claim, error) {
	options, ok := s.catalog.OptionsFor(in.ClaimType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClaimType, in.ClaimType)
	}
	valid := false
	for _, o := range options {
		if o == in.ClaimOption {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClaimOption, in.ClaimOption)
	}

	p, err := s.claims.GetPolicy(ctx, sess, in.PolicyID)
	if err != nil {
		return nil, err
	}
	if !p.Claimable() {
		return nil, ErrPolicyNotClaimable
	}

	cl, err := s.claims.CreateClaim(ctx, sess, in)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.Register(sess, cl); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *ClaimService) GetClaim(ctx context.Context, sess session.Context, claimID string) (*claim.Claim, error) {
	return s.claims.GetClaim(ctx, sess, claimID)
}

func (s *ClaimService) ListMyClaims(ctx context.Context, sess session.Context) ([]claim.Claim, error) {
	return s.claims.ListClaims(ctx, sess)
}

// ListReviewClaims lists claims awaiting the reviewer's queue.
func (s *ClaimService) ListReviewClaims(ctx context.Context, sess session.Context, status string) ([]claim.Claim, error) {
	if !sess.IsReviewer() {
		return nil, ErrReviewerRequired
	}
	if status != "" && !claim.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, status)
	}
	return s.claims.ListReviewClaims(ctx, sess, status)
}

// DeleteClaim removes a draft claim and its local session.
func (s *ClaimService) DeleteClaim(ctx context.Context, sess session.Context, claimID string) error {
	if err := s.claims.DeleteClaim(ctx, sess, claimID); err != nil {
		return err
	}
	s.sessions.Drop(claimID)
	return nil
}

// Review applies an HR/agent decision: forward, return, approve or reject.
// Only legal transitions are sent to the backend, and decisions that send a
// claim back or end it need a reason the claimant will see.
func (s *ClaimService) Review(ctx context.Context, sess session.Context, claimID string, in claim.UpdateStatusInput) (*claim.Claim, error) {
	if !sess.IsReviewer() {
		return nil, ErrReviewerRequired
	}
	if !claim.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, in.Status)
	}
	next := claim.ClaimStatus(in.Status)

	cl, err := s.claims.GetClaim(ctx, sess, claimID)
	if err != nil {
		return nil, err
	}
	if !cl.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cl.Status, next)
	}
	if (next == claim.StatusRejected || next == claim.StatusEmployee) && in.Reason == "" {
		return nil, ErrReasonRequired
	}

	return s.claims.UpdateClaimStatus(ctx, sess, claimID, in.Status, in.Reason)
}
