package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JaredDoge/BabyRecordBackend/models"
)

// InitDB 初始化資料庫連線並回傳連線，由呼叫端注入到各服務
func InitDB(config Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(config.DBPath)
	default:
		dialector = mysql.Open(config.GetDBConnString())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 統一各驅動的唯一鍵衝突錯誤，登入時靠它判斷重複名稱
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// 設定連線池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 設定連線池參數
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自動遷移表結構
	if err := migrateDB(db); err != nil {
		return nil, err
	}

	return db, nil
}

// migrateDB 進行資料庫表結構遷移
func migrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Caregiver{},
		&models.Record{},
		&models.Settings{},
	)
	if err != nil {
		return fmt.Errorf("資料庫遷移失敗: %v", err)
	}
	return nil
}
