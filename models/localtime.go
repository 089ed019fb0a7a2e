package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// LocalTimeLayout 資料庫儲存與 API 輸出使用的固定時間格式
const LocalTimeLayout = "2006-01-02 15:04:05"

// parseLayouts 接受的輸入時間格式，依序嘗試。
// hasZone 為 true 的格式帶有時區資訊，解析後換算為本地時間；
// 其餘格式直接視為本地時間，欄位原樣保留。
var parseLayouts = []struct {
	layout  string
	hasZone bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{LocalTimeLayout, false},
	{"2006-01-02 15:04", false},
	{"2006/01/02 15:04:05", false},
	{"2006-01-02", false},
}

// LocalTime 以本地時間欄位表示的時間點，
// 無論寫入資料庫或輸出 JSON 都使用固定格式字串
type LocalTime struct {
	time.Time
}

// ParseFlexible 解析常見交換格式的時間字串並正規化為本地表示。
// 照顧者輸入什麼時刻，顯示時就是什麼時刻，不做 UTC 截斷。
func ParseFlexible(raw string) (LocalTime, error) {
	for _, l := range parseLayouts {
		if l.hasZone {
			if t, err := time.Parse(l.layout, raw); err == nil {
				return LocalTime{t.In(time.Local)}, nil
			}
		} else {
			if t, err := time.ParseInLocation(l.layout, raw, time.Local); err == nil {
				return LocalTime{t}, nil
			}
		}
	}
	return LocalTime{}, fmt.Errorf("無法解析時間格式: %q", raw)
}

func (t LocalTime) String() string {
	return t.Time.Format(LocalTimeLayout)
}

// MarshalJSON 輸出固定格式字串
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON 接受任何可解析的交換格式
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	parsed, err := ParseFlexible(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value 寫入資料庫時使用固定格式字串
func (t LocalTime) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan 從資料庫讀取。MySQL 驅動回傳 time.Time，sqlite 依欄位型別
// 可能回傳 time.Time 或字串；不管驅動掛在哪個時區，
// 日曆欄位都原樣保留並視為本地時間。
func (t *LocalTime) Scan(v interface{}) error {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			t.Time = time.Time{}
			return nil
		}
		t.Time = time.Date(val.Year(), val.Month(), val.Day(),
			val.Hour(), val.Minute(), val.Second(), 0, time.Local)
		return nil
	case []byte:
		return t.scanString(string(val))
	case string:
		return t.scanString(val)
	case nil:
		t.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("無法將 %T 轉換為 LocalTime", v)
}

func (t *LocalTime) scanString(s string) error {
	parsed, err := time.ParseInLocation(LocalTimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
