package salary

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

var (
	monthCanonicalRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	monthCompactRegex   = regexp.MustCompile(`^(\d{4})(\d{2})$`)
	monthReversedRegex  = regexp.MustCompile(`^(\d{1,2})-(\d{4})$`)
	monthBareRegex      = regexp.MustCompile(`^(\d{1,2})$`)
)

// NormalizeMonth turns the accepted month spellings into canonical
// "YYYY-MM". Accepted: "YYYY-MM", "YYYYMM", "M-YYYY", and a bare month
// number (current year assumed).
func NormalizeMonth(s string) (string, error) {
	return normalizeMonthAt(s, time.Now())
}

func normalizeMonthAt(s string, now time.Time) (string, error) {
	var year, month int

	switch {
	case monthCanonicalRegex.MatchString(s):
		m := monthCanonicalRegex.FindStringSubmatch(s)
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
	case monthCompactRegex.MatchString(s):
		m := monthCompactRegex.FindStringSubmatch(s)
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
	case monthReversedRegex.MatchString(s):
		m := monthReversedRegex.FindStringSubmatch(s)
		month, _ = strconv.Atoi(m[1])
		year, _ = strconv.Atoi(m[2])
	case monthBareRegex.MatchString(s):
		month, _ = strconv.Atoi(s)
		year = now.Year()
	default:
		return "", fmt.Errorf("%w: %q", salary.ErrInvalidMonth, s)
	}

	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d out of range", salary.ErrInvalidMonth, month)
	}
	if year < 2000 || year > 2200 {
		return "", fmt.Errorf("%w: year %d out of range", salary.ErrInvalidMonth, year)
	}

	return fmt.Sprintf("%04d-%02d", year, month), nil
}

// MonthBounds returns the first day of the month and the first day of the
// next month for a canonical "YYYY-MM" string.
func MonthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", salary.ErrInvalidMonth, month)
	}
	return start, start.AddDate(0, 1, 0), nil
}
