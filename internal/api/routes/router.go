package routes

import (
	"github.com/coverdesk/claims-go/internal/api/handlers"
	"github.com/coverdesk/claims-go/internal/api/middleware"
	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, clients *client.Clients, catalog *config.Catalog) {
	services_instance := application.New(clients, catalog)
	handlers_instance := handlers.New(services_instance)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", handlers.AuthStatusHandler)
		auth.GET("/ws/claims/:id/status", handlers_instance.ClaimStatus.Stream)

		policies := auth.Group("/policies")
		{
			policies.GET("", handlers_instance.Policy.ListPolicies)
			policies.GET("/:id", handlers_instance.Policy.GetPolicy)
		}
		auth.GET("/claim-types", handlers_instance.Policy.ListClaimTypes)

		claims := auth.Group("/claims")
		{
			claims.GET("", handlers_instance.Claim.ListMyClaims)
			claims.POST("", handlers_instance.Claim.CreateClaim)
			claims.GET("/review", middleware.RequireRole(config.ReviewerRoles...), handlers_instance.Claim.ListReviewClaims)
			claims.GET("/:id", handlers_instance.Claim.GetClaim)
			claims.DELETE("/:id", handlers_instance.Claim.DeleteClaim)
			claims.PUT("/:id/status", middleware.RequireRole(config.ReviewerRoles...), handlers_instance.Claim.UpdateStatus)

			questionnaire := claims.Group("/:id/questionnaire")
			{
				questionnaire.GET("", handlers_instance.Questionnaire.GetState)
				questionnaire.PUT("/draft", handlers_instance.Questionnaire.SaveDraft)
				questionnaire.POST("/questions/:questionId/files", handlers_instance.Questionnaire.SelectFile)
				questionnaire.POST("/save", handlers_instance.Questionnaire.Save)
				questionnaire.POST("/next", handlers_instance.Questionnaire.Next)
				questionnaire.POST("/previous", handlers_instance.Questionnaire.Previous)
				questionnaire.POST("/submit", handlers_instance.Questionnaire.Submit)
			}
		}

		documents := auth.Group("/documents")
		{
			documents.POST("", handlers_instance.Document.Upload)
			documents.GET("", handlers_instance.Document.Search)
			documents.GET("/:id/download", handlers_instance.Document.Download)
		}
	}
}
