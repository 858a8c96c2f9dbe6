package handlers

import (
	"github.com/coverdesk/claims-go/internal/application"
)

type Handlers struct {
	Claim         *ClaimHandler
	Policy        *PolicyHandler
	Document      *DocumentHandler
	Questionnaire *QuestionnaireHandler
	ClaimStatus   *ClaimStatusHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Claim:         NewClaimHandler(svc.Claim),
		Policy:        NewPolicyHandler(svc.Policy),
		Document:      NewDocumentHandler(svc.Document),
		Questionnaire: NewQuestionnaireHandler(svc.Questionnaire),
		ClaimStatus:   NewClaimStatusHandler(svc.Claim),
	}
}
