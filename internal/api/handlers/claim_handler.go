package handlers

import (
	"net/http"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/coverdesk/claims-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	service *application.ClaimService
}

func NewClaimHandler(service *application.ClaimService) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// CreateClaim godoc
// @Summary Start a draft claim for a policy, claim type and option
// @Tags claims
// @Accept json
// @Produce json
// @Param input body claim.CreateClaimInput true "Claim info"
// @Success 201 {object} claim.Claim
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var input claim.CreateClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cl, err := h.service.StartClaim(c.Request.Context(), sess, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cl)
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cl, err := h.service.GetClaim(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cl)
}

func (h *ClaimHandler) ListMyClaims(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	claims, err := h.service.ListMyClaims(c.Request.Context(), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, claims)
}

// ListReviewClaims lists the claims waiting in the reviewer's queue,
// optionally filtered by status.
func (h *ClaimHandler) ListReviewClaims(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	claims, err := h.service.ListReviewClaims(c.Request.Context(), sess, c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, claims)
}

// UpdateStatus applies an HR/agent review decision.
func (h *ClaimHandler) UpdateStatus(c *gin.Context) {
	var input claim.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cl, err := h.service.Review(c.Request.Context(), sess, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cl)
}

func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.service.DeleteClaim(c.Request.Context(), sess, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "claim deleted"})
}
