package services

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JaredDoge/BabyRecordBackend/models"
)

// SettingsService 全域提醒間隔設定，僅有以 sentinel 為鍵的單一列
type SettingsService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewSettingsService 建立設定服務
func NewSettingsService(db *gorm.DB, logger *zap.SugaredLogger) *SettingsService {
	return &SettingsService{db: db, logger: logger}
}

// Get 取得全域設定，尚未寫入時回傳預設值且不落地
func (s *SettingsService) Get() (models.Settings, error) {
	var settings models.Settings
	err := s.db.Where("caregiver_name = ?", models.SettingsSentinel).First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	return models.Settings{}, err
}

// Put 以 upsert 覆寫全部欄位，不做部分更新，
// 不存在時插入新列，存在時整列取代
func (s *SettingsService) Put(feedingInterval, pumpingInterval *int, modifiedBy string) error {
	if feedingInterval == nil || pumpingInterval == nil || strings.TrimSpace(modifiedBy) == "" {
		return NewValidationError("feeding_interval、pumping_interval 與 caregiver_name（修改者）為必填")
	}

	settings := models.Settings{
		CaregiverName:   models.SettingsSentinel,
		FeedingInterval: *feedingInterval,
		PumpingInterval: *pumpingInterval,
		LastModifiedBy:  modifiedBy,
		UpdatedAt:       models.LocalTime{Time: time.Now()},
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "caregiver_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"feeding_interval", "pumping_interval", "last_modified_by", "updated_at",
		}),
	}).Create(&settings).Error
}
