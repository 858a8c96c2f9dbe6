package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/policy"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/coverdesk/claims-go/internal/domain/session"
)

//go:generate mockgen -source=claims.go -destination=mock/claims_mock.go -package=mock

// ClaimsAPI is the claims backend's REST contract as this service uses it.
type ClaimsAPI interface {
	CreateClaim(ctx context.Context, sess session.Context, in claim.CreateClaimInput) (*claim.Claim, error)
	GetClaim(ctx context.Context, sess session.Context, claimID string) (*claim.Claim, error)
	ListClaims(ctx context.Context, sess session.Context) ([]claim.Claim, error)
	ListReviewClaims(ctx context.Context, sess session.Context, status string) ([]claim.Claim, error)
	SubmitSectionAnswers(ctx context.Context, sess session.Context, claimID, sectionID string, answers []questionnaire.AnswerSubmission) (*questionnaire.SaveResult, error)
	SubmitAllAnswers(ctx context.Context, sess session.Context, claimID string, answers []questionnaire.AnswerSubmission) (*questionnaire.SaveResult, error)
	UpdateClaimStatus(ctx context.Context, sess session.Context, claimID, status, reason string) (*claim.Claim, error)
	SubmitClaim(ctx context.Context, sess session.Context, claimID string, claimAmount float64, documents []string) (*claim.Claim, error)
	DeleteClaim(ctx context.Context, sess session.Context, claimID string) error
	ListPolicies(ctx context.Context, sess session.Context) ([]policy.Policy, error)
	GetPolicy(ctx context.Context, sess session.Context, policyID string) (*policy.Policy, error)
}

type restClaimsClient struct {
	base       string
	httpClient *http.Client
}

type answersPayload struct {
	Answers []questionnaire.AnswerSubmission `json:"answers"`
}

type statusPayload struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type submitPayload struct {
	ClaimAmount float64  `json:"claimAmount"`
	Documents   []string `json:"documents"`
}

func (c *restClaimsClient) CreateClaim(ctx context.Context, sess session.Context, in claim.CreateClaimInput) (*claim.Claim, error) {
	var out claim.Claim
	if err := doJSON(ctx, c.httpClient, sess, http.MethodPost, c.base+"/claims", in, &out); err != nil {
		return nil, err
	}
	if out.Questionnaire != nil {
		out.Questionnaire.Normalize()
	}
	return &out, nil
}

func (c *restClaimsClient) GetClaim(ctx context.Context, sess session.Context, claimID string) (*claim.Claim, error) {
	var out claim.Claim
	if err := doJSON(ctx, c.httpClient, sess, http.MethodGet, c.base+"/claims/"+url.PathEscape(claimID), nil, &out); err != nil {
		return nil, err
	}
	if out.Questionnaire != nil {
		out.Questionnaire.Normalize()
	}
	return &out, nil
}

func (c *restClaimsClient) ListClaims(ctx context.Context, sess session.Context) ([]claim.Claim, error) {
	var out []claim.Claim
	if err := doJSON(ctx, c.httpClient, sess, http.MethodGet, c.base+"/claims", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClaimsClient) ListReviewClaims(ctx context.Context, sess session.Context, status string) ([]claim.Claim, error) {
	u := c.base + "/claims/review"
	if status != "" {
		u += "?status=" + url.QueryEscape(status)
	}
	var out []claim.Claim
	if err := doJSON(ctx, c.httpClient, sess, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClaimsClient) SubmitSectionAnswers(ctx context.Context, sess session.Context, claimID, sectionID string, answers []questionnaire.AnswerSubmission) (*questionnaire.SaveResult, error) {
	u := fmt.Sprintf("%s/claims/%s/sections/%s/answers", c.base, url.PathEscape(claimID), url.PathEscape(sectionID))
	var out questionnaire.SaveResult
	if err := doJSON(ctx, c.httpClient, sess, http.MethodPost, u, answersPayload{Answers: answers}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClaimsClient) SubmitAllAnswers(ctx context.Context, sess session.Context, claimID string, answers []questionnaire.AnswerSubmission) (*questionnaire.SaveResult, error) {
	u := fmt.Sprintf("%s/claims/%s/answers", c.base, url.PathEscape(claimID))
	var out questionnaire.SaveResult
	if err := doJSON(ctx, c.httpClient, sess, http.MethodPost, u, answersPayload{Answers: answers}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClaimsClient) UpdateClaimStatus(ctx context.Context, sess session.Context, claimID, status, reason string) (*claim.Claim, error) {
	u := fmt.Sprintf("%s/claims/%s/status", c.base, url.PathEscape(claimID))
	var out claim.Claim
	if err := doJSON(ctx, c.httpClient, sess, http.MethodPut, u, statusPayload{Status: status, Reason: reason}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClaimsClient) SubmitClaim(ctx context.Context, sess session.Context, claimID string, claimAmount float64, documents []string) (*claim.Claim, error) {
	u := fmt.Sprintf("%s/claims/%s/submit", c.base, url.PathEscape(claimID))
	var out claim.Claim
	if err := doJSON(ctx, c.httpClient, sess, http.MethodPost, u, submitPayload{ClaimAmount: claimAmount, Documents: documents}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClaimsClient) DeleteClaim(ctx context.Context, sess session.Context, claimID string) error {
	return doJSON(ctx, c.httpClient, sess, http.MethodDelete, c.base+"/claims/"+url.PathEscape(claimID), nil, nil)
}

func (c *restClaimsClient) ListPolicies(ctx context.Context, sess session.Context) ([]policy.Policy, error) {
	var out []policy.Policy
	if err := doJSON(ctx, c.httpClient, sess, http.MethodGet, c.base+"/policies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClaimsClient) GetPolicy(ctx context.Context, sess session.Context, policyID string) (*policy.Policy, error) {
	var out policy.Policy
	if err := doJSON(ctx, c.httpClient, sess, http.MethodGet, c.base+"/policies/"+url.PathEscape(policyID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
