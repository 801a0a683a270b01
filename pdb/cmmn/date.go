package cmmn

import (
	"fmt"
	"strconv"
	"time"
)

var months = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// Two digit years below this are in the 21st century.
const yearPivot = 69

// DateError says a date column was not DD-MMM-YY.
type DateError struct {
	Text string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("date %q is not in DD-MMM-YY form", e.Text)
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	n, _ := strconv.Atoi(s)
	return n, true
}

// ParseDate reads a pdb date like 28-MAR-07. The month must be upper
// case. Years 69 to 99 are 19xx, the rest 20xx.
func ParseDate(s string) (time.Time, error) {
	bad := &DateError{Text: s}
	if len(s) != 9 || s[2] != '-' || s[6] != '-' {
		return time.Time{}, bad
	}
	day, ok1 := twoDigits(s[0:2])
	yy, ok2 := twoDigits(s[7:9])
	if !ok1 || !ok2 {
		return time.Time{}, bad
	}
	mon := 0
	for i, m := range months {
		if s[3:6] == m {
			mon = i + 1
			break
		}
	}
	if mon == 0 {
		return time.Time{}, bad
	}
	year := 2000 + yy
	if yy >= yearPivot {
		year = 1900 + yy
	}
	t := time.Date(year, time.Month(mon), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day { // 31-FEB and friends
		return time.Time{}, bad
	}
	return t, nil
}

// FormatDate is the inverse of ParseDate. The zero time is a blank
// date of nine spaces.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return blankDate
	}
	return fmt.Sprintf("%02d-%s-%02d", t.Day(), months[t.Month()-1], t.Year()%100)
}
