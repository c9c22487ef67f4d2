// Package stats computes derived invocation metrics. All functions are pure.
package stats

import (
	"fmt"
	"math"
	"time"
)

// Round rounds v to the given number of decimal places, halves away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Rate returns round(100*part/total, 1), or 0 when total is zero.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part)/float64(total)*100, 1)
}

// SuccessRate returns the percentage of known outcomes that succeeded.
// Unknown (nil) outcomes are excluded. An empty denominator yields 0, not nil.
func SuccessRate(outcomes []*bool) float64 {
	var known, succeeded int
	for _, o := range outcomes {
		if o == nil {
			continue
		}
		known++
		if *o {
			succeeded++
		}
	}
	return Rate(succeeded, known)
}

// AverageSatisfaction returns the mean of the present ratings rounded to one
// decimal place, or nil when no rating is present.
func AverageSatisfaction(ratings []*int) *float64 {
	present := make([]int, 0, len(ratings))
	for _, r := range ratings {
		if r != nil {
			present = append(present, *r)
		}
	}
	return Mean(present, 1)
}

// Mean returns the average of values rounded to places, or nil when empty.
func Mean(values []int, places int) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	avg := Round(float64(sum)/float64(len(values)), places)
	return &avg
}

// DurationMinutes returns the elapsed whole minutes between startedAt and
// completedAt, rounding half up. It returns nil while the invocation is in progress.
func DurationMinutes(startedAt time.Time, completedAt *time.Time) *int {
	if completedAt == nil {
		return nil
	}
	seconds := completedAt.Sub(startedAt).Seconds()
	minutes := int(math.Floor(seconds/60 + 0.5))
	return &minutes
}

// DurationDisplay formats a duration in minutes as "45m" or "2h 5m".
func DurationDisplay(minutes *int) string {
	if minutes == nil {
		return "In progress"
	}
	m := *minutes
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}

// PerDay returns count/days rounded to one decimal place.
func PerDay(count, days int) float64 {
	if days <= 0 {
		return 0
	}
	return Round(float64(count)/float64(days), 1)
}
