package application

import (
	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"
)

type Services struct {
	Claim         *ClaimService
	Policy        *PolicyService
	Document      *DocumentService
	Questionnaire *QuestionnaireService
}

func New(clients *client.Clients, catalog *config.Catalog) *Services {
	questionnaire := NewQuestionnaireService(clients.Claims, clients.Documents)
	return &Services{
		Claim:         NewClaimService(clients.Claims, catalog, questionnaire),
		Policy:        NewPolicyService(clients.Claims, catalog),
		Document:      NewDocumentService(clients.Documents),
		Questionnaire: questionnaire,
	}
}
