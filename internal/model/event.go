package model

import (
	"strconv"
	"strings"
	"time"

	apperrors "tcgurt/pkg/app_errors"
)

type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Organizer   string    `json:"organizer" db:"organizer"`
	Location    *string   `json:"location,omitempty" db:"location"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	FbLink      *string   `json:"fbLink,omitempty" db:"fb_link"`
	Price       int       `json:"price" db:"price"`
}

// CreateEventParams 建立活動參數，Organizer/Location/FbLink 為空時由主辦者 profile 補上
type CreateEventParams struct {
	Name        string
	Description *string
	StartDate   time.Time
	Price       int
	Organizer   *string
	Location    *string
	FbLink      *string
}

// ListEventsFilter Month 採 0-11（一月為 0）
type ListEventsFilter struct {
	Month *int
}

// Price 接受 JSON 數字或數字字串（表單送出的 "100"）
type Price int

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return apperrors.ErrInvalidPrice
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return apperrors.ErrInvalidPrice
	}
	*p = Price(v)
	return nil
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ParseStartDate 解析 RFC3339 或 YYYY-MM-DD；clock 為 HH:MM 時覆寫該日期的時與分
func ParseStartDate(date string, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	start, err := time.Parse(time.RFC3339, date)
	if err != nil {
		start, err = time.Parse(dateLayout, date)
		if err != nil {
			return time.Time{}, apperrors.ErrInvalidStartDate
		}
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return start, nil
	}
	hm, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidStartDate
	}
	return time.Date(start.Year(), start.Month(), start.Day(), hm.Hour(), hm.Minute(), 0, 0, start.Location()), nil
}
