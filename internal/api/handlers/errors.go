package handlers

import (
	"errors"
	"net/http"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps application and backend errors onto HTTP responses.
// Every outcome here is retryable by the user; nothing tears down the session.
func writeServiceError(c *gin.Context, err error) {
	var verrs application.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]response.FieldError, len(verrs))
		for i, v := range verrs {
			fields[i] = response.FieldError{Field: v.QuestionID, Message: v.Message}
		}
		c.JSON(http.StatusUnprocessableEntity, response.ValidationResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}

	var uploadErr *application.UploadError
	if errors.As(err, &uploadErr) {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: uploadErr.Error()})
		return
	}
	var saveErr *application.SaveError
	if errors.As(err, &saveErr) {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: saveErr.Error()})
		return
	}
	var submitErr *application.SubmitError
	if errors.As(err, &submitErr) {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: submitErr.Error()})
		return
	}

	switch {
	case errors.Is(err, application.ErrSaveInProgress),
		errors.Is(err, application.ErrClaimNotEditable),
		errors.Is(err, application.ErrAtFinalReview),
		errors.Is(err, application.ErrQuestionnaireIncomplete):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrReviewerRequired):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrAtFirstSection),
		errors.Is(err, application.ErrUnknownQuestion),
		errors.Is(err, application.ErrUnknownClaimType),
		errors.Is(err, application.ErrInvalidClaimOption),
		errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, application.ErrReasonRequired),
		errors.Is(err, application.ErrPolicyNotClaimable),
		errors.Is(err, application.ErrEmptyFile):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		// Pass caller mistakes through; everything else is the backend's fault.
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			c.JSON(apiErr.Status, response.ErrorResponse{Error: apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: apiErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
}
