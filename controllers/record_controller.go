package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JaredDoge/BabyRecordBackend/config"
	"github.com/JaredDoge/BabyRecordBackend/models"
	"github.com/JaredDoge/BabyRecordBackend/services"
)

// RecordController 照護記錄控制器
type RecordController struct {
	records *services.RecordService
}

// NewRecordController 建立記錄控制器
func NewRecordController(records *services.RecordService) *RecordController {
	return &RecordController{records: records}
}

// List 查詢記錄，可依 caregiver_id 或 caregiver_name 過濾
func (rc *RecordController) List(c *gin.Context) {
	filter := services.RecordFilter{}
	if idStr := c.Query("caregiver_id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "caregiver_id 格式無效"})
			return
		}
		caregiverID := uint(id)
		filter.CaregiverID = &caregiverID
	} else if name := c.Query("caregiver_name"); name != "" {
		filter.CaregiverName = name
	}

	records, err := rc.records.List(filter)
	if err != nil {
		config.Logger.Errorw("查詢記錄失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查詢記錄失敗"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Get 查詢單筆記錄
func (rc *RecordController) Get(c *gin.Context) {
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	record, err := rc.records.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "記錄不存在"})
			return
		}
		config.Logger.Errorw("查詢記錄失敗", "error", err, "recordID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查詢記錄失敗"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Create 新增記錄
func (rc *RecordController) Create(c *gin.Context) {
	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "caregiver_id 或 caregiver_name、time、event 為必填"})
		return
	}

	recordID, err := rc.records.Create(req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
			return
		}
		config.Logger.Errorw("新增記錄失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "新增記錄失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record_id": recordID})
}

// Update 更新記錄，整列覆寫 time、event 與 notes
func (rc *RecordController) Update(c *gin.Context) {
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req models.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "time 與 event 為必填"})
		return
	}

	recordID, err := rc.records.Update(id, req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "記錄不存在"})
			return
		}
		config.Logger.Errorw("更新記錄失敗", "error", err, "recordID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "更新記錄失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record_id": recordID})
}

// Delete 刪除記錄
func (rc *RecordController) Delete(c *gin.Context) {
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	recordID, err := rc.records.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "記錄不存在"})
			return
		}
		config.Logger.Errorw("刪除記錄失敗", "error", err, "recordID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "刪除記錄失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record_id": recordID})
}

// parseRecordID 解析路徑參數中的記錄 ID，非數字視同查無記錄
func parseRecordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "記錄不存在"})
		return 0, false
	}
	return uint(id), true
}
