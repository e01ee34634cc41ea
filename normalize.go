package jobscout

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ukrainianMonths maps genitive month names, as used in "15 березня",
// to calendar months.
var ukrainianMonths = map[string]time.Month{
	"січня":     time.January,
	"лютого":    time.February,
	"березня":   time.March,
	"квітня":    time.April,
	"травня":    time.May,
	"червня":    time.June,
	"липня":     time.July,
	"серпня":    time.August,
	"вересня":   time.September,
	"жовтня":    time.October,
	"листопада": time.November,
	"грудня":    time.December,
}

// NormalizeLocalDate converts a "<day> <month>" date with a Ukrainian month
// name into YYYY-MM-DD, taking the year from now.
//
// It returns false if the text is not exactly two tokens, the day is not a
// valid day of that month, or the month name is unknown. A December date
// parsed in January is dated to the current year; no rollover is applied.
func NormalizeLocalDate(text string, now time.Time) (string, bool) {
	fields := strings.Fields(CleanText(text))
	if len(fields) != 2 {
		return "", false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", false
	}

	// Casers keep state, so each call gets its own.
	month, ok := ukrainianMonths[cases.Lower(language.Ukrainian).String(fields[1])]
	if !ok {
		return "", false
	}

	d := time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if day < 1 || d.Month() != month {
		return "", false
	}
	return d.Format(time.DateOnly), true
}

// currencySymbols match anywhere in the text.
var currencySymbols = []string{"₴", "$", "€"}

// currencyWords match as whole words only, so "Europe" is not "eur".
var currencyWords = map[string]bool{
	"грн": true,
	"uah": true,
	"usd": true,
	"eur": true,
}

// ContainsCurrency reports whether text mentions a currency, which marks it
// as a salary rather than, say, a company name sharing the same slot.
func ContainsCurrency(text string) bool {
	for _, sym := range currencySymbols {
		if strings.Contains(text, sym) {
			return true
		}
	}

	words := strings.FieldsFunc(cases.Lower(language.Und).String(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if currencyWords[w] {
			return true
		}
	}
	return false
}

// CleanText normalizes scraped text: NFC composition, non-breaking spaces
// turned into spaces and runs of whitespace collapsed.
func CleanText(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.Join(strings.Fields(text), " ")
}
