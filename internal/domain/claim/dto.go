package claim

type CreateClaimInput struct {
	PolicyID    string `json:"policyId" binding:"required"`
	ClaimType   string `json:"claimType" binding:"required"`
	ClaimOption string `json:"claimOption" binding:"required"`
}

type SubmitClaimInput struct {
	ClaimAmount float64 `json:"claimAmount" binding:"required,gt=0"`
}

// UpdateStatusInput drives the HR/agent review modal actions. Reason is
// required by the service for rejections and returns.
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty"`
}
