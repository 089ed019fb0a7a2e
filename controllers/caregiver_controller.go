package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JaredDoge/BabyRecordBackend/config"
	"github.com/JaredDoge/BabyRecordBackend/models"
	"github.com/JaredDoge/BabyRecordBackend/services"
)

// CaregiverController 照顧者控制器
type CaregiverController struct {
	caregivers *services.CaregiverService
}

// NewCaregiverController 建立照顧者控制器
func NewCaregiverController(caregivers *services.CaregiverService) *CaregiverController {
	return &CaregiverController{caregivers: caregivers}
}

// Login 依名稱登入，名稱不存在時自動建立照顧者
func (cc *CaregiverController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "照顧者名稱不能為空"})
		return
	}

	caregiverID, err := cc.caregivers.Login(req.CaregiverName)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
			return
		}
		config.Logger.Errorw("照顧者登入失敗",
			"error", err,
			"caregiverName", req.CaregiverName,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "登入失敗，請稍後再試"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caregiver_id": caregiverID})
}
