package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the absolute calendar-date input format.
const DateFormat = "2006-01-02"

// TimeFormat is the time-of-day input format.
const TimeFormat = "15:04"

// Parser converts due-date expressions to absolute calendar dates.
// It accepts absolute dates ("2026-09-15") as well as relative
// expressions ("today", "tomorrow", "in 3 days", "next friday").
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string, e.g.
// "Europe/Berlin". Dates resolve to midnight in that timezone.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseDate converts a due-date expression to a calendar date (local
// midnight). baseTime is the reference point for relative expressions,
// usually time.Now(). Unknown expressions are an error, not "today": a
// mistyped date must not silently move a deadline.
func (p *Parser) ParseDate(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return time.Time{}, fmt.Errorf("empty date expression")
	}

	if t, err := time.ParseInLocation(DateFormat, expr, p.location); err == nil {
		return t, nil
	}

	switch expr {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, baseTime)
	}
	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", expr)
}

// ParseTimeOfDay converts "HH:MM" to a time value whose hour and minute
// carry the time of day. The date part is the zero date.
func (p *Parser) ParseTimeOfDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeFormat, strings.TrimSpace(s), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t, nil
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles "next monday" … "next sunday".
func (p *Parser) parseNextWeekday(expr string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(expr, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
