package domain

import "time"

// BirthDate is a calendar date in the past.
type BirthDate struct {
	value time.Time
}

func NewBirthDate(value time.Time, now time.Time) (BirthDate, error) {
	if value.IsZero() {
		return BirthDate{}, NewValidationError("date of birth", "cannot be blank")
	}
	day := truncateToDay(value)
	if day.After(truncateToDay(now)) {
		return BirthDate{}, NewValidationError("date of birth", "cannot be in the future")
	}
	return BirthDate{value: day}, nil
}

func (b BirthDate) Value() time.Time {
	return b.value
}

func (b BirthDate) IsZero() bool {
	return b.value.IsZero()
}

// AgeAt returns the whole years elapsed between the birth date and the
// given date. The birthday itself counts as completed.
func (b BirthDate) AgeAt(at time.Time) int {
	atDay := truncateToDay(at)
	years := atDay.Year() - b.value.Year()
	anniversary := time.Date(atDay.Year(), b.value.Month(), b.value.Day(), 0, 0, 0, 0, time.UTC)
	if atDay.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
