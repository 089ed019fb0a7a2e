package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JaredDoge/BabyRecordBackend/models"
)

// newTestDB 建立記憶體 sqlite 資料庫並完成遷移
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// 記憶體資料庫只能綁單一連線
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Caregiver{},
		&models.Record{},
		&models.Settings{},
	))
	return db
}

func newTestLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
