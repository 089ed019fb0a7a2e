package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JaredDoge/BabyRecordBackend/models"
)

// CaregiverService 照顧者身分解析，名稱不存在時自動建立
type CaregiverService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewCaregiverService 建立照顧者服務
func NewCaregiverService(db *gorm.DB, logger *zap.SugaredLogger) *CaregiverService {
	return &CaregiverService{db: db, logger: logger}
}

// Login 依名稱取得照顧者 ID，不存在時建立新照顧者
func (s *CaregiverService) Login(name string) (uint, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, NewValidationError("照顧者名稱不能為空")
	}

	var caregiver models.Caregiver
	err := s.db.Where("caregiver_name = ?", trimmed).First(&caregiver).Error
	if err == nil {
		return caregiver.CaregiverID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	caregiver = models.Caregiver{CaregiverName: trimmed}
	err = s.db.Create(&caregiver).Error
	if err == nil {
		s.logger.Infow("照顧者建立成功",
			"caregiverID", caregiver.CaregiverID,
			"caregiverName", trimmed,
		)
		return caregiver.CaregiverID, nil
	}

	// 兩個請求同時以同一個新名稱登入時，唯一鍵保證只有一列存活，
	// 輸掉的一方改查既有列。重查一律使用已修剪的名稱。
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing models.Caregiver
		if retryErr := s.db.Where("caregiver_name = ?", trimmed).First(&existing).Error; retryErr == nil {
			return existing.CaregiverID, nil
		}
	}
	return 0, err
}
