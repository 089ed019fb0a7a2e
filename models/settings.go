package models

import "time"

// 全域設定，以固定的 sentinel 鍵儲存唯一一列
const (
	SettingsSentinel = "global"

	// 尚未寫入任何設定時回傳的預設值
	DefaultFeedingInterval = 180
	DefaultPumpingInterval = 240
	DefaultModifiedBy      = "System"
)

// Settings 餵奶與擠奶的提醒間隔（分鐘），全體照顧者共用
type Settings struct {
	CaregiverName   string    `gorm:"type:varchar(64);primaryKey" json:"-"`
	FeedingInterval int       `gorm:"not null" json:"feeding_interval"`
	PumpingInterval int       `gorm:"not null" json:"pumping_interval"`
	LastModifiedBy  string    `gorm:"type:varchar(255);not null" json:"last_modified_by"`
	UpdatedAt       LocalTime `gorm:"type:datetime;not null" json:"updated_at"`
}

// TableName 指定表名
func (Settings) TableName() string { return "settings" }

// DefaultSettings 回傳未持久化的預設設定
func DefaultSettings() Settings {
	return Settings{
		CaregiverName:   SettingsSentinel,
		FeedingInterval: DefaultFeedingInterval,
		PumpingInterval: DefaultPumpingInterval,
		LastModifiedBy:  DefaultModifiedBy,
		UpdatedAt:       LocalTime{Time: time.Now()},
	}
}
