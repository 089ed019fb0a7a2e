package models

// RecordResponse 記錄查詢回應結構體，附上照顧者名稱供前端顯示
type RecordResponse struct {
	RecordID      uint      `json:"record_id"`
	CaregiverID   uint      `json:"caregiver_id"`
	CaregiverName string    `json:"caregiver_name"`
	Time          LocalTime `json:"time"`
	Event         string    `json:"event"`
	Notes         string    `json:"notes"`
}
