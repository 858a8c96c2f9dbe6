package handlers

import (
	"net/http"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/coverdesk/claims-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	service *application.PolicyService
}

func NewPolicyHandler(service *application.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// ListPolicies godoc
// @Summary List the employee's policies
// @Tags policies
// @Produce json
// @Success 200 {array} policy.Policy
// @Router /policies [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	policies, err := h.service.ListPolicies(c.Request.Context(), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, policies)
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.service.GetPolicy(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListClaimTypes returns the claim types and options for the wizard's
// claim-type step.
func (h *PolicyHandler) ListClaimTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"claimTypes": h.service.ClaimTypes()})
}
