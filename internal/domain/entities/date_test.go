//go:build unit

package entities_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	t.Run("should render day, month and year zero padded", func(t *testing.T) {
		t.Parallel()

		// given
		ts := time.Date(2024, time.January, 5, 9, 7, 0, 0, time.UTC)

		// when
		result := entities.FormatDate(ts, false)

		// then
		assert.Equal(t, "05-01-2024", result)
	})

	t.Run("should append the 24-hour time of day when requested", func(t *testing.T) {
		t.Parallel()

		// given
		ts := time.Date(2024, time.December, 31, 23, 5, 59, 0, time.UTC)

		// when
		result := entities.FormatDate(ts, true)

		// then
		assert.Equal(t, "31-12-2024 - 23:05", result)
	})

	t.Run("should produce the date-only form as a prefix of the full form", func(t *testing.T) {
		t.Parallel()

		// given
		timestamps := []time.Time{
			time.Date(1999, time.February, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 4, 12, 30, 0, 0, time.UTC),
			time.Date(2030, time.October, 16, 18, 45, 0, 0, time.FixedZone("BRT", -3*60*60)),
		}

		for _, ts := range timestamps {
			// when
			short := entities.FormatDate(ts, false)
			full := entities.FormatDate(ts, true)

			// then
			assert.True(t, strings.HasPrefix(full, short+" - "), "%q should prefix %q", short, full)
		}
	})

	t.Run("should be stable when its own date output is parsed and formatted again", func(t *testing.T) {
		t.Parallel()

		// given
		ts := time.Date(2024, time.March, 9, 16, 0, 0, 0, time.UTC)
		first := entities.FormatDate(ts, false)

		// when
		target, err := entities.ParseInputDate(first, time.UTC, ts)
		require.NoError(t, err)
		second := entities.FormatDate(target.Day, false)

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should use the location carried by the timestamp", func(t *testing.T) {
		t.Parallel()

		// given
		ts := time.Date(2024, time.January, 5, 23, 30, 0, 0, time.UTC)
		tokyo := time.FixedZone("JST", 9*60*60)

		// when
		result := entities.FormatDate(ts.In(tokyo), true)

		// then
		assert.Equal(t, "06-01-2024 - 08:30", result)
	})
}

func TestParseInputDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should select every date for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		input := ""

		// when
		target, err := entities.ParseInputDate(input, time.UTC, now)

		// then
		require.NoError(t, err)
		assert.True(t, target.All)
	})

	t.Run("should parse a DD-MM-YYYY date in the given location", func(t *testing.T) {
		t.Parallel()

		// given
		input := "05-01-2024"

		// when
		target, err := entities.ParseInputDate(input, time.UTC, now)

		// then
		require.NoError(t, err)
		assert.False(t, target.All)
		assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), target.Day)
	})

	t.Run("should accept today", func(t *testing.T) {
		t.Parallel()

		// given
		input := "15-06-2024"

		// when
		_, err := entities.ParseInputDate(input, time.UTC, now)

		// then
		require.NoError(t, err)
	})

	t.Run("should reject inputs not shaped like DD-MM-YYYY", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"2099-13-99", "5-1-2024", "05/01/2024", "05-01-24", "yesterday", "05-01-2024x"} {
			// when
			_, err := entities.ParseInputDate(input, time.UTC, now)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidDateFormat, input)
		}
	})

	t.Run("should reject dates that do not exist on the calendar", func(t *testing.T) {
		t.Parallel()

		// given
		input := "31-02-2024"

		// when
		_, err := entities.ParseInputDate(input, time.UTC, now)

		// then
		require.ErrorIs(t, err, entities.ErrNonexistentDate)
		assert.NotErrorIs(t, err, entities.ErrInvalidDateFormat)
	})

	t.Run("should reject whitespace-only input instead of selecting every date", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{" ", "   ", "\t", " \t "} {
			// when
			target, err := entities.ParseInputDate(input, time.UTC, now)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidDateFormat, "%q", input)
			assert.False(t, target.All, "%q", input)
		}
	})

	t.Run("should reject a valid date surrounded by whitespace", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{" 05-01-2024 ", " 05-01-2024", "05-01-2024\t"} {
			// when
			_, err := entities.ParseInputDate(input, time.UTC, now)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidDateFormat, "%q", input)
		}
	})

	t.Run("should reject dates after the current moment", func(t *testing.T) {
		t.Parallel()

		// given
		input := "16-06-2024"

		// when
		_, err := entities.ParseInputDate(input, time.UTC, now)

		// then
		require.ErrorIs(t, err, entities.ErrFutureDate)
	})
}

func TestTargetLabel(t *testing.T) {
	t.Parallel()

	t.Run("should render a concrete day as DD-MM-YYYY", func(t *testing.T) {
		t.Parallel()

		// given
		target := entities.OnDay(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC))

		// when
		label := target.Label()

		// then
		assert.Equal(t, "05-01-2024", label)
	})

	t.Run("should render the all-dates target as any date", func(t *testing.T) {
		t.Parallel()

		// given
		target := entities.AllDates()

		// when
		label := target.Label()

		// then
		assert.Equal(t, "any date", label)
	})
}
