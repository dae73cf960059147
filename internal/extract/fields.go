package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date portion of a record's date token.
const DateLayout = "2006-1-2"

var probabilityRegex = regexp.MustCompile(`\((\d+(?:\.\d+)?)%\)`)

// ParseAmount drops every non-digit character (thousands separators, unit
// suffixes) and parses what remains. An empty result is 0.
func ParseAmount(token string) (int64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, token)
	if digits == "" {
		return 0, nil
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", token, err)
	}
	return amount, nil
}

// ParseDate reads the YYYY-MM-DD part of a token such as
// "2024-03-01 21:15:09". The result is midnight UTC.
func ParseDate(token string) (time.Time, bool) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(token), " ")
	if datePart == "" {
		return time.Time{}, false
	}
	date, err := time.Parse(DateLayout, datePart)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// ExtractProbability returns the percentage of the last "(<number>%)"
// annotation in label. Zero and missing annotations report false.
func ExtractProbability(label string) (float64, bool) {
	matches := probabilityRegex.FindAllStringSubmatch(label, -1)
	if len(matches) == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(matches[len(matches)-1][1], 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
