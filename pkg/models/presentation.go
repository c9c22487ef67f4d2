package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Badge colours used by the presentation helpers.
const (
	ColorGreen  = "green"
	ColorGray   = "gray"
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorOrange = "orange"
	ColorPurple = "purple"
)

// Bounds shared by tier, severity, priority and satisfaction rating.
const (
	MinLevel = 1
	MaxLevel = 5
)

var (
	severityLabels = [...]string{"Minor", "Low", "Medium", "High", "Critical"}
	priorityLabels = [...]string{"Very Low", "Low", "Medium", "High", "Critical"}
	levelColors    = [...]string{ColorBlue, ColorGreen, ColorYellow, ColorOrange, ColorRed}
)

// LevelBadgeColor maps a 1-5 tier, severity or priority to a badge colour.
func LevelBadgeColor(level int) string {
	if level < MinLevel || level > MaxLevel {
		return ColorGray
	}
	return levelColors[level-1]
}

// SeverityLabel returns the label for an issue severity.
func SeverityLabel(severity int) string {
	if severity < MinLevel || severity > MaxLevel {
		return "Unknown"
	}
	return severityLabels[severity-1]
}

// PriorityLabel returns the label for an improvement priority.
func PriorityLabel(priority int) string {
	if priority < MinLevel || priority > MaxLevel {
		return "Unknown"
	}
	return priorityLabels[priority-1]
}

// SuccessLabel renders the tri-state success flag of an invocation.
func SuccessLabel(success *bool) string {
	switch {
	case success == nil:
		return "Unknown"
	case *success:
		return "Success"
	default:
		return "Failed"
	}
}

// SuccessBadgeColor returns the badge colour for the tri-state success flag.
func SuccessBadgeColor(success *bool) string {
	switch {
	case success == nil:
		return ColorGray
	case *success:
		return ColorGreen
	default:
		return ColorRed
	}
}

// RatingStars renders a 1-5 satisfaction rating as filled and empty stars.
func RatingStars(rating *int) string {
	if rating == nil {
		return "—"
	}
	filled := min(max(*rating, 0), MaxLevel)
	return strings.Repeat("★", filled) + strings.Repeat("☆", MaxLevel-filled)
}

// Humanize turns an enum value like "spec_update" into "Spec update".
func Humanize(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
