package routes

import (
	"net/http"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/services"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, db *database.Database, statsService services.StatsServiceInterface) {
	router.GET("/dashboard", func(c *gin.Context) { GetDashboardStats(c, db, statsService) })
}

func GetDashboardStats(c *gin.Context, db *database.Database, statsService services.StatsServiceInterface) {
	stats, err := statsService.GetDashboardStats(db)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
