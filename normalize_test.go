package jobscout_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/fwojciec/jobscout"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocalDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("converts day and genitive month using current year", func(t *testing.T) {
		t.Parallel()

		got, ok := jobscout.NormalizeLocalDate("15 березня", now)

		assert.True(t, ok)
		assert.Equal(t, "2025-03-15", got)
	})

	t.Run("uses the year of the supplied clock", func(t *testing.T) {
		t.Parallel()

		year := time.Now().Year()
		got, ok := jobscout.NormalizeLocalDate("15 березня", time.Now())

		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(year)+"-03-15", got)
	})

	t.Run("maps all twelve months", func(t *testing.T) {
		t.Parallel()

		months := []string{
			"січня", "лютого", "березня", "квітня", "травня", "червня",
			"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
		}
		for i, name := range months {
			got, ok := jobscout.NormalizeLocalDate("1 "+name, now)
			assert.True(t, ok, name)
			assert.Equal(t, time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly), got)
		}
	})

	t.Run("ignores case and extra whitespace", func(t *testing.T) {
		t.Parallel()

		got, ok := jobscout.NormalizeLocalDate("  3 ЛИСТОПАДА ", now)

		assert.True(t, ok)
		assert.Equal(t, "2025-11-03", got)
	})

	t.Run("does not roll December dates back a year", func(t *testing.T) {
		t.Parallel()

		january := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
		got, ok := jobscout.NormalizeLocalDate("31 грудня", january)

		assert.True(t, ok)
		assert.Equal(t, "2026-12-31", got)
	})

	failures := []string{
		"бла бла бла",
		"",
		"15",
		"15 March",
		"п'ятнадцятого березня",
		"0 березня",
		"31 лютого",
	}
	for _, text := range failures {
		t.Run("rejects "+strconv.Quote(text), func(t *testing.T) {
			t.Parallel()

			got, ok := jobscout.NormalizeLocalDate(text, now)

			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestContainsCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"15000 грн", true},
		{"25 000 – 35 000 грн", true},
		{"15000грн", true},
		{"до 40 000 ₴", true},
		{"$2500–3500", true},
		{"1500 USD", true},
		{"3000 €", true},
		{"Acme Corp", false},
		{"Europe Software", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, jobscout.ContainsCurrency(tt.text))
		})
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Senior Go Engineer", jobscout.CleanText("  Senior Go \n\t Engineer "))
	assert.Equal(t, "25 000 грн", jobscout.CleanText("25\u00a0000\u00a0грн"))
	assert.Empty(t, jobscout.CleanText(" \n "))
}
