package application

import (
	"context"

	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/coverdesk/claims-go/internal/domain/policy"
	"github.com/coverdesk/claims-go/internal/domain/session"
)

type PolicyService struct {
	claims  client.ClaimsAPI
	catalog *config.Catalog
}

func NewPolicyService(claims client.ClaimsAPI, catalog *config.Catalog) *PolicyService {
	return &PolicyService{claims: claims, catalog: catalog}
}

func (s *PolicyService) ListPolicies(ctx context.Context, sess session.Context) ([]policy.Policy, error) {
	return s.claims.ListPolicies(ctx, sess)
}

func (s *PolicyService) GetPolicy(ctx context.Context, sess session.Context, policyID string) (*policy.Policy, error) {
	return s.claims.GetPolicy(ctx, sess, policyID)
}

// ClaimTypes returns the configured claim types and their options for the
// claim-type selection step.
func (s *PolicyService) ClaimTypes() []config.CatalogEntry {
	return s.catalog.ClaimTypes
}
