package policy

import "time"

type PolicyStatus string

const (
	PolicyActive  PolicyStatus = "active"
	PolicyLapsed  PolicyStatus = "lapsed"
	PolicyExpired PolicyStatus = "expired"
)

// Policy is an insurance policy held by the employee, as returned by the
// claims backend. Read-only from this service's perspective.
type Policy struct {
	ID             string       `json:"id"`
	PolicyNumber   string       `json:"policyNumber"`
	Type           string       `json:"type"`
	Provider       string       `json:"provider"`
	CoverageAmount float64      `json:"coverageAmount"`
	Premium        float64      `json:"premium"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PolicyStatus `json:"status"`
}

func (p Policy) Claimable() bool {
	return p.Status == PolicyActive
}
