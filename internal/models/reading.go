package models

import "time"

// DateLayout is the calendar-day format readings are entered and displayed with.
const DateLayout = "2006-01-02"

type Reading struct {
	Date      time.Time `json:"date"`
	Systolic  int       `json:"systolic"`  // mmHg
	Diastolic int       `json:"diastolic"` // mmHg
}

// Day returns the reading date formatted as YYYY-MM-DD.
func (r Reading) Day() string {
	return r.Date.Format(DateLayout)
}
