package router

import (
	"github.com/gin-gonic/gin"
	"github.com/skinpulse/skinpulse/internal/api/handler"
)

func SetupRoutes(r *gin.Engine, trackerHandler *handler.TrackerHandler) {
	r.GET("/health", trackerHandler.Health)

	v1 := r.Group("/api/v1")
	{
		prices := v1.Group("/prices")
		{
			prices.GET("", trackerHandler.GetPrice)
			prices.GET("/chart", trackerHandler.GetChart)
		}

		v1.GET("/trending", trackerHandler.GetTrending)
		v1.POST("/refresh", trackerHandler.TriggerRefresh)
	}
}
