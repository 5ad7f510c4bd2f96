package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dltmdgh0611/Quicksnippet/controllers"
	"github.com/dltmdgh0611/Quicksnippet/services"
)

// RegisterRoutes 컨트롤러 생성 및 라우트 등록
func RegisterRoutes(r *gin.Engine, client *services.OpenAIClient, store services.SnippetStore, notifier *services.WebhookNotifier) {
	analyzeController := controllers.NewAnalyzeController(services.NewAnalyzeService(client.JSONChat))
	improveController := controllers.NewImproveController(services.NewImproveService(client.Chat))
	healthController := controllers.NewHealthController(store, notifier)
	userController := controllers.NewUserController(store)

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", analyzeController.Analyze)
		api.POST("/improve-snippet", improveController.Improve)
		api.POST("/health-check", healthController.SaveHealthCheck)
		api.GET("/team-health", healthController.TeamHealth)
		api.POST("/user", userController.JoinTeam)
		api.GET("/user", userController.GetUser)
	}

	// 테스트 라우트
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
