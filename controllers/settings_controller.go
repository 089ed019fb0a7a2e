package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JaredDoge/BabyRecordBackend/config"
	"github.com/JaredDoge/BabyRecordBackend/models"
	"github.com/JaredDoge/BabyRecordBackend/services"
)

// SettingsController 全域設定控制器
type SettingsController struct {
	settings *services.SettingsService
}

// NewSettingsController 建立設定控制器
func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// Get 取得全域設定，尚未寫入時回傳預設值
func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.settings.Get()
	if err != nil {
		config.Logger.Errorw("查詢設定失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查詢設定失敗"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Put 覆寫全域設定
func (sc *SettingsController) Put(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "feeding_interval、pumping_interval 與 caregiver_name（修改者）為必填"})
		return
	}

	if err := sc.settings.Put(req.FeedingInterval, req.PumpingInterval, req.CaregiverName); err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
			return
		}
		config.Logger.Errorw("更新設定失敗", "error", err, "modifiedBy", req.CaregiverName)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "更新設定失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
