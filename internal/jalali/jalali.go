// Package jalali converts Gregorian calendar dates to the Jalali (Solar
// Hijri) calendar used for all user-facing dates.
//
// The conversion follows the arithmetic published by Khayam/Birashk and
// popularised by the jalaali-js reference: the year table below lists the
// Jalali years whose leap pattern breaks the regular 33-year cycle.
package jalali

import (
	"fmt"
	"time"
)

// Date is a Jalali calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as YYYY/MM/DD with zero-padded month and day.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// FromTime converts the calendar date of t. The clock and zone of t are
// ignored beyond selecting the day.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return FromGregorian(y, m, d)
}

// FromGregorian converts a Gregorian year, month and day.
func FromGregorian(year int, month time.Month, day int) Date {
	return fromJDN(gregorianToJDN(year, int(month), day))
}

// IsLeapYear reports whether the Jalali year has 366 days.
func IsLeapYear(year int) bool {
	leap, _, _ := jalCal(year)
	return leap == 0
}

// MonthLength returns the number of days in the given Jalali month.
func MonthLength(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeapYear(year):
		return 30
	default:
		return 29
	}
}

// Jalali years immediately following a break in the 33-year leap cycle.
var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// jalCal determines the leap status of a Jalali year, the Gregorian year it
// starts in, and the March day of Farvardin 1 in that Gregorian year.
func jalCal(jy int) (leap, gy, march int) {
	gy = jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp

	// Leap days elapsed since the epoch on the Jalali side.
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	// Leap days elapsed on the Gregorian side.
	leapG := gy/4 - (gy/100+1)*3/4 - 150

	march = 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap, gy, march
}

// gregorianToJDN returns the Julian day number of a Gregorian date.
func gregorianToJDN(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

// jdnToGregorian inverts gregorianToJDN.
func jdnToGregorian(jdn int) (gy, gm, gd int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := j%1461/4*5 + 308
	gd = i%153/5 + 1
	gm = i/153%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

func fromJDN(jdn int) Date {
	gy, _, _ := jdnToGregorian(jdn)
	jy := gy - 621
	leap, _, march := jalCal(jy)
	k := jdn - gregorianToJDN(gy, 3, march)
	if k >= 0 {
		if k <= 185 {
			return Date{Year: jy, Month: 1 + k/31, Day: k%31 + 1}
		}
		k -= 186
	} else {
		jy--
		k += 179
		if leap == 1 {
			k++
		}
	}
	return Date{Year: jy, Month: 7 + k/30, Day: k%30 + 1}
}
