package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common OCR misreads on printed labels.
var ocrSubstitutions = strings.NewReplacer("|", "1", "O", "0")

// Date patterns in decreasing order of specificity. Month-only dates
// resolve to the last day of the month.
var (
	reFullDate  = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	reShortDate = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2})\b`)
	// The leading guard keeps this from matching the tail of a full date.
	reMonthDate = regexp.MustCompile(`(?:^|[^\d/\-])(\d{1,2})[/\-](\d{4})\b`)
)

// Labels more than this far in the past are assumed to be misreads rather
// than genuinely expired product.
const maxPastExpiry = 30 * 24 * time.Hour

// ExtractExpiryDate scans OCR output for an expiry date. It returns the
// parsed date and whether one was found.
func ExtractExpiryDate(text string) (time.Time, bool) {
	return extractExpiryDateAt(text, time.Now())
}

func extractExpiryDateAt(text string, now time.Time) (time.Time, bool) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, false
	}
	normalized := ocrSubstitutions.Replace(strings.Join(strings.Fields(text), " "))
	cutoff := now.Add(-maxPastExpiry)

	if d, ok := firstValidDate(reFullDate, normalized, parseFullYear); ok && !d.Before(cutoff) {
		return d, true
	}
	if d, ok := firstValidDate(reShortDate, normalized, parseShortYear); ok && !d.Before(cutoff) {
		return d, true
	}

	if m := reMonthDate.FindStringSubmatch(normalized); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			// Day zero of the following month is the last day of this one.
			d := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
			if !d.Before(cutoff) {
				return d, true
			}
		}
	}

	return time.Time{}, false
}

func parseFullYear(s string) int {
	year, _ := strconv.Atoi(s)
	return year
}

// Two-digit years pivot at 30: "26" means 2026, "95" means 1995.
func parseShortYear(s string) int {
	year, _ := strconv.Atoi(s)
	if year <= 30 {
		return 2000 + year
	}
	return 1900 + year
}

// firstValidDate returns the first match of re that forms a real calendar
// date (31/02 is rejected, not rolled over).
func firstValidDate(re *regexp.Regexp, text string, yearFn func(string) int) (time.Time, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := yearFn(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
			continue
		}
		return d, true
	}
	return time.Time{}, false
}
