// Package clock pins the bot to its single operating timezone.
package clock

import "time"

var tehran = mustLoad("Asia/Tehran")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Now returns the current instant in Tehran local time.
func Now() time.Time {
	return time.Now().In(tehran)
}

// Location returns the fixed timezone all attendance timestamps use.
func Location() *time.Location {
	return tehran
}
