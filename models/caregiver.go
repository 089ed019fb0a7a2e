package models

import "time"

// Caregiver 照顧者模型，首次以某個名稱登入時建立
type Caregiver struct {
	CaregiverID   uint      `gorm:"primaryKey;autoIncrement" json:"caregiver_id"`
	CaregiverName string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"caregiver_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName 指定表名
func (Caregiver) TableName() string { return "caregivers" }
