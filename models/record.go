package models

import "time"

// 記錄事件類型的固定清單，僅接受完全相符的值
const (
	EventFeeding   = "餵奶"
	EventPumping   = "擠奶"
	EventStool     = "大便"
	EventUrination = "小便"
)

// AllowedEvents 允許的事件類型
var AllowedEvents = []string{EventFeeding, EventPumping, EventStool, EventUrination}

// IsValidEvent 檢查事件是否在允許清單內
func IsValidEvent(event string) bool {
	for _, e := range AllowedEvents {
		if event == e {
			return true
		}
	}
	return false
}

// Record 照護記錄模型，一筆記錄對應一次照護事件
type Record struct {
	RecordID    uint      `gorm:"primaryKey;autoIncrement" json:"record_id"`
	CaregiverID uint      `gorm:"not null;index" json:"caregiver_id"`
	Time        LocalTime `gorm:"type:datetime;not null;index" json:"time"`
	Event       string    `gorm:"type:varchar(16);not null" json:"event"`
	Notes       string    `gorm:"type:varchar(255);not null;default:''" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 關聯，刪除照顧者時連動刪除其記錄
	Caregiver *Caregiver `gorm:"foreignKey:CaregiverID;references:CaregiverID;constraint:OnDelete:CASCADE" json:"caregiver,omitempty"`
}

// TableName 指定表名
func (Record) TableName() string { return "records" }
