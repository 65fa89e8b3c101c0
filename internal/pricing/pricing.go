package pricing

import "time"

const millisPerDay = 24 * 60 * 60 * 1000

// DaysBetween counts rental days between pickup and return, rounding any
// partial day up to a whole day. The difference is measured in milliseconds
// so shifting either timestamp by a minute already counts the next day.
func DaysBetween(pickup, ret time.Time) int32 {
	ms := ret.Sub(pickup).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int32((ms + millisPerDay - 1) / millisPerDay)
}

// TotalCents returns the rental total for the period at the car's daily rate.
// The result depends only on its inputs, so recomputing from stored
// timestamps always yields the same amount.
func TotalCents(pickup, ret time.Time, pricePerDayCents int32) int32 {
	return DaysBetween(pickup, ret) * pricePerDayCents
}
