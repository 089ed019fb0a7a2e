package models

// LoginRequest 照顧者登入請求結構體
type LoginRequest struct {
	CaregiverName string `json:"caregiver_name"`
}

// CreateRecordRequest 新增記錄請求結構體，
// caregiver_id 與 caregiver_name 擇一提供
type CreateRecordRequest struct {
	CaregiverID   *uint   `json:"caregiver_id"`
	CaregiverName string  `json:"caregiver_name"`
	Time          string  `json:"time"`
	Event         string  `json:"event"`
	Notes         *string `json:"notes"`
}

// UpdateRecordRequest 更新記錄請求結構體，整列覆寫
type UpdateRecordRequest struct {
	Time  string  `json:"time"`
	Event string  `json:"event"`
	Notes *string `json:"notes"`
}

// UpdateSettingsRequest 更新全域設定請求結構體，
// caregiver_name 為修改者名稱，僅作稽核顯示用
type UpdateSettingsRequest struct {
	FeedingInterval *int   `json:"feeding_interval"`
	PumpingInterval *int   `json:"pumping_interval"`
	CaregiverName   string `json:"caregiver_name"`
}
