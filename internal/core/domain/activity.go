package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrActivityNotFound    = errors.New("daily activity not found")
	ErrInvalidActivityDate = errors.New("invalid activity date (must be YYYY-MM-DD)")
	ErrNegativeSolvedCount = errors.New("solved count cannot be negative")
	ErrActivityInvalidUser = errors.New("invalid user id")
)

// DateLayout is the calendar-day key used across the tracker: one entry
// per user per date, gaps meaning zero activity.
const DateLayout = "2006-01-02"

type DailyActivity struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	Date   string `json:"date" db:"activity_date"`
	Solved int    `json:"solved" db:"solved"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewDailyActivity(userID, date string, solved int) (*DailyActivity, error) {
	now := time.Now().UTC()

	a := &DailyActivity{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      strings.TrimSpace(date),
		Solved:    solved,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *DailyActivity) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrActivityInvalidUser
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return ErrInvalidActivityDate
	}
	if a.Solved < 0 {
		return ErrNegativeSolvedCount
	}
	return nil
}

// Day parses the entry's calendar date. Entries are validated before they
// reach the aggregation code, so a zero time only shows up for malformed
// rows and is treated as absent by the callers.
func (a *DailyActivity) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
