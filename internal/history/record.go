package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical DD-MM-YYYY form used in the store file and
// everywhere a draw date is displayed.
const DateLayout = "02-01-2006"

var (
	ErrMissingDate   = errors.New("draw record has no date")
	ErrInvalidNumber = errors.New("draw number must be exactly two digits")
)

// Date is a calendar day that serializes as DD-MM-YYYY. The zero value
// means "unknown" and never enters the store.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses the canonical DD-MM-YYYY form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid draw date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is a single draw result: the day it was drawn and the two-digit
// number that came out.
type Record struct {
	Date   Date   `json:"date"`
	Number string `json:"number"`
}

// Validate reports whether the record may enter the store.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return ErrMissingDate
	}
	if !ValidNumber(r.Number) {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, r.Number)
	}
	return nil
}

// ValidNumber reports whether s is a zero-padded two-digit decimal string.
func ValidNumber(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
