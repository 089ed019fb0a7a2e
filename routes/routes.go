package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JaredDoge/BabyRecordBackend/config"
	"github.com/JaredDoge/BabyRecordBackend/controllers"
	"github.com/JaredDoge/BabyRecordBackend/services"
)

// RegisterRoutes 註冊路由，資料庫連線由外部注入
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	caregiverService := services.NewCaregiverService(db, config.Logger)
	recordService := services.NewRecordService(db, caregiverService, config.Logger)
	settingsService := services.NewSettingsService(db, config.Logger)

	caregiverController := controllers.NewCaregiverController(caregiverService)
	recordController := controllers.NewRecordController(recordService)
	settingsController := controllers.NewSettingsController(settingsService)

	api := r.Group("/api")
	{
		api.POST("/caregivers/login", caregiverController.Login)

		api.GET("/records", recordController.List)
		api.GET("/records/:id", recordController.Get)
		api.POST("/records", recordController.Create)
		api.PUT("/records/:id", recordController.Update)
		api.DELETE("/records/:id", recordController.Delete)

		api.GET("/settings", settingsController.Get)
		api.PUT("/settings", settingsController.Put)
	}

	// 健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
