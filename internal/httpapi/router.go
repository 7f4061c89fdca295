package httpapi

import "github.com/gin-gonic/gin"

func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthcheck", h.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/chat", h.Chat)
		api.GET("/history/assignments", h.RecentAssignments)
		api.GET("/history/chats", h.RecentChats)
		api.GET("/report", h.DailyReport)
	}

	return r
}
