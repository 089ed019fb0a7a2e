package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JaredDoge/BabyRecordBackend/models"
)

// recordColumns 查詢記錄時固定的欄位清單
const recordColumns = "records.record_id, records.caregiver_id, caregivers.caregiver_name, " +
	"records.time, records.event, records.notes"

// RecordService 照護記錄的建立、查詢、更新與刪除
type RecordService struct {
	db         *gorm.DB
	caregivers *CaregiverService
	logger     *zap.SugaredLogger
}

// NewRecordService 建立記錄服務
func NewRecordService(db *gorm.DB, caregivers *CaregiverService, logger *zap.SugaredLogger) *RecordService {
	return &RecordService{db: db, caregivers: caregivers, logger: logger}
}

// RecordFilter 查詢條件，零值表示查詢全部記錄
type RecordFilter struct {
	CaregiverID   *uint
	CaregiverName string
}

// List 依時間由新到舊回傳記錄，可依照顧者過濾
func (s *RecordService) List(filter RecordFilter) ([]models.RecordResponse, error) {
	query := s.db.Table("records").
		Select(recordColumns).
		Joins("JOIN caregivers ON records.caregiver_id = caregivers.caregiver_id").
		Order("records.time DESC")

	if filter.CaregiverID != nil {
		query = query.Where("records.caregiver_id = ?", *filter.CaregiverID)
	} else if filter.CaregiverName != "" {
		query = query.Where("caregivers.caregiver_name = ?", filter.CaregiverName)
	}

	records := make([]models.RecordResponse, 0)
	if err := query.Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Get 取得單筆記錄
func (s *RecordService) Get(id uint) (models.RecordResponse, error) {
	var record models.RecordResponse
	err := s.db.Table("records").
		Select(recordColumns).
		Joins("JOIN caregivers ON records.caregiver_id = caregivers.caregiver_id").
		Where("records.record_id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return record, ErrNotFound
		}
		return record, err
	}
	return record, nil
}

// Create 新增記錄並回傳新的記錄 ID
func (s *RecordService) Create(req models.CreateRecordRequest) (uint, error) {
	if (req.CaregiverID == nil && req.CaregiverName == "") || req.Time == "" || req.Event == "" {
		return 0, NewValidationError("caregiver_id 或 caregiver_name、time、event 為必填")
	}

	// 欄位全部驗證通過才碰資料庫，避免事件不合法時仍建立新照顧者
	t, event, notes, err := validateRecordFields(req.Time, req.Event, req.Notes)
	if err != nil {
		return 0, err
	}

	// 解析照顧者：指定 ID 時必須存在，指定名稱時沿用登入流程自動建立
	var caregiverID uint
	if req.CaregiverID != nil {
		var caregiver models.Caregiver
		if err := s.db.First(&caregiver, *req.CaregiverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, NewValidationError("照顧者不存在")
			}
			return 0, err
		}
		caregiverID = caregiver.CaregiverID
	} else {
		id, err := s.caregivers.Login(req.CaregiverName)
		if err != nil {
			return 0, err
		}
		caregiverID = id
	}

	record := models.Record{
		CaregiverID: caregiverID,
		Time:        t,
		Event:       event,
		Notes:       notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return 0, err
	}
	return record.RecordID, nil
}

// Update 整列覆寫 time、event 與 notes
func (s *RecordService) Update(id uint, req models.UpdateRecordRequest) (uint, error) {
	if req.Time == "" || req.Event == "" {
		return 0, NewValidationError("time 與 event 為必填")
	}

	t, event, notes, err := validateRecordFields(req.Time, req.Event, req.Notes)
	if err != nil {
		return 0, err
	}

	result := s.db.Model(&models.Record{}).
		Where("record_id = ?", id).
		Updates(map[string]interface{}{
			"time":  t,
			"event": event,
			"notes": notes,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

// Delete 刪除記錄
func (s *RecordService) Delete(id uint) (uint, error) {
	result := s.db.Delete(&models.Record{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

// validateRecordFields 檢查事件與時間欄位並正規化時間
func validateRecordFields(rawTime, event string, notes *string) (models.LocalTime, string, string, error) {
	if !models.IsValidEvent(event) {
		return models.LocalTime{}, "", "", NewValidationError(
			fmt.Sprintf("event 必須為 %s", strings.Join(models.AllowedEvents, "/")))
	}

	t, err := models.ParseFlexible(rawTime)
	if err != nil {
		return models.LocalTime{}, "", "", NewValidationError("time 格式無效")
	}

	n := ""
	if notes != nil {
		n = *notes
	}
	return t, event, n, nil
}
