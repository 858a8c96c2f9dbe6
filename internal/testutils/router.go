package testutils

import (
	"github.com/coverdesk/claims-go/internal/api/routes"
	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"

	"github.com/gin-gonic/gin"
)

func SetupRouter(clients *client.Clients, catalog *config.Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, clients, catalog)
	return r
}
