// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package era maps calendar dates to coarse year buckets that decide which
// upstream providers can serve them. News coverage splits at 1963 and 1999;
// music charts begin in 1958 and usable popularity data in 1950.
//
// See docs/ARCHITECTURE § Era Routing.
package era

import (
	"fmt"
	"math/rand"
	"time"
)

// Year boundaries for the era buckets.
const (
	// ArchiveStartYear is the first year with any archive coverage.
	ArchiveStartYear = 1803

	// HistoricEndYear is the last year served by the historical archives.
	HistoricEndYear = 1963

	// ModernStartYear is the first year served by the modern archive.
	ModernStartYear = 1999

	// ChartStartYear is the first year with a year-end chart.
	ChartStartYear = 1958

	// MusicStartYear is the first year with usable popularity data.
	MusicStartYear = 1950
)

// NewsEra selects which news adapters serve a date.
type NewsEra int

const (
	// NewsHistoric routes to both historical archives (year <= 1963).
	NewsHistoric NewsEra = iota

	// NewsGap covers 1964-1998: modern first, historical fallback.
	NewsGap

	// NewsModern routes to the modern archive only (year >= 1999).
	NewsModern
)

func (e NewsEra) String() string {
	switch e {
	case NewsHistoric:
		return "historic"
	case NewsGap:
		return "gap"
	default:
		return "modern"
	}
}

// MusicEra selects how songs are sourced for a date.
type MusicEra int

const (
	// MusicNone means no music data exists (year < 1950).
	MusicNone MusicEra = iota

	// MusicUncharted covers 1950-1957: popularity known, no chart.
	MusicUncharted

	// MusicCharted means a year-end chart is available (year >= 1958).
	MusicCharted
)

// Date is a Gregorian calendar date. The zero value is not valid; construct
// through NewDate or ParseDate.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate validates the components and returns a Date. Years before the
// archive start are rejected because no provider can serve them.
func NewDate(year, month, day int) (Date, error) {
	if year < ArchiveStartYear || year > time.Now().Year() {
		return Date{}, fmt.Errorf("year %d outside archive coverage [%d, %d]", year, ArchiveStartYear, time.Now().Year())
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day %d out of range", day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// String formats the date as YYYY-MM-DD, the form every upstream accepts.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ClampDay caps the day at 28 so month-length arithmetic never produces an
// invalid date. Callers that sample random dates use this.
func (d Date) ClampDay() Date {
	if d.Day > 28 {
		d.Day = 28
	}
	return d
}

// NewsEraFor buckets a year for news routing.
func NewsEraFor(year int) NewsEra {
	switch {
	case year <= HistoricEndYear:
		return NewsHistoric
	case year >= ModernStartYear:
		return NewsModern
	default:
		return NewsGap
	}
}

// MusicEraFor buckets a year for music sourcing.
func MusicEraFor(year int) MusicEra {
	switch {
	case year < MusicStartYear:
		return MusicNone
	case year < ChartStartYear:
		return MusicUncharted
	default:
		return MusicCharted
	}
}

// RandomDate draws a uniform date with year in [ArchiveStartYear, maxYear],
// month in [1,12] and day in [1,28].
func RandomDate(r *rand.Rand, maxYear int) Date {
	return Date{
		Year:  ArchiveStartYear + r.Intn(maxYear-ArchiveStartYear+1),
		Month: 1 + r.Intn(12),
		Day:   1 + r.Intn(28),
	}
}

// ResampleYear draws a new year uniformly from the same news-era bucket as
// year. Gap years resample across the full archive span, since no single
// bucket covers them well.
func ResampleYear(r *rand.Rand, year, maxYear int) int {
	switch NewsEraFor(year) {
	case NewsHistoric:
		return ArchiveStartYear + r.Intn(HistoricEndYear-ArchiveStartYear+1)
	case NewsModern:
		return ModernStartYear + r.Intn(maxYear-ModernStartYear+1)
	default:
		return ArchiveStartYear + r.Intn(maxYear-ArchiveStartYear+1)
	}
}
