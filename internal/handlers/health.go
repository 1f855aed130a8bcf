package handlers

import (
	"time"

	"github.com/cardiotrack/cardiotrack/db"
	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	status := "ok"

	if db.DB != nil {
		if sqlDB, err := db.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
		}
	}

	c.JSON(200, gin.H{
		"status":    status,
		"message":   "Cardiotrack is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
