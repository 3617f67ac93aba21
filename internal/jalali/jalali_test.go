package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromGregorian(t *testing.T) {
	cases := []struct {
		gy   int
		gm   time.Month
		gd   int
		want string
	}{
		{1970, time.January, 1, "1348/10/11"},
		{1979, time.February, 11, "1357/11/22"},
		{2016, time.April, 11, "1395/01/23"},
		{2024, time.March, 19, "1402/12/29"},
		{2024, time.March, 20, "1403/01/01"},
		{2024, time.August, 31, "1403/06/10"},
		{2025, time.March, 20, "1403/12/30"},
		{2025, time.March, 21, "1404/01/01"},
	}
	for _, tc := range cases {
		got := FromGregorian(tc.gy, tc.gm, tc.gd)
		require.Equal(t, tc.want, got.String(), "gregorian %d-%d-%d", tc.gy, tc.gm, tc.gd)
	}
}

func TestFromTimeUsesCalendarDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	morning := time.Date(2024, time.March, 20, 0, 30, 0, 0, loc)
	night := time.Date(2024, time.March, 20, 23, 59, 59, 0, loc)
	require.Equal(t, FromTime(morning), FromTime(night))
	require.Equal(t, "1403/01/01", FromTime(morning).String())
}

func TestLeapYears(t *testing.T) {
	leap := []int{1375, 1399, 1403}
	common := []int{1397, 1400, 1404}
	for _, y := range leap {
		require.True(t, IsLeapYear(y), "year %d", y)
	}
	for _, y := range common {
		require.False(t, IsLeapYear(y), "year %d", y)
	}
}

func TestMonthLength(t *testing.T) {
	for m := 1; m <= 6; m++ {
		require.Equal(t, 31, MonthLength(1403, m))
	}
	for m := 7; m <= 11; m++ {
		require.Equal(t, 30, MonthLength(1403, m))
	}
	require.Equal(t, 30, MonthLength(1403, 12))
	require.Equal(t, 29, MonthLength(1404, 12))
}

// Every Gregorian day of a full leap cycle must land on a valid Jalali day.
func TestConversionStaysInRange(t *testing.T) {
	day := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	prev := FromTime(day.AddDate(0, 0, -1))
	for day.Before(end) {
		d := FromTime(day)
		require.GreaterOrEqual(t, d.Month, 1)
		require.LessOrEqual(t, d.Month, 12)
		require.GreaterOrEqual(t, d.Day, 1)
		require.LessOrEqual(t, d.Day, MonthLength(d.Year, d.Month))
		if d.Month == prev.Month {
			require.Equal(t, prev.Day+1, d.Day)
		} else {
			require.Equal(t, 1, d.Day)
			require.Equal(t, prev.Day, MonthLength(prev.Year, prev.Month))
		}
		prev = d
		day = day.AddDate(0, 0, 1)
	}
}
