// Package dates provides permissive date parsing plus the age and
// recency arithmetic the verifier and aggregator depend on. Unparsable
// input is reported, never fatal: callers treat it as neutral evidence.
package dates

import (
	"strings"
	"time"
)

// layouts are tried in order. Vendor feeds are inconsistent; cover the
// common ISO, US and long-form shapes.
var layouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006-01-02T15:04:05Z07:00",
	time.RFC1123,
	time.RFC822,
}

// Parse parses a date string in any supported layout, returning the
// date truncated to day granularity.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}

// SameDay reports whether two parseable date strings name the same day.
func SameDay(a, b string) (equal bool, ok bool) {
	ta, okA := Parse(a)
	tb, okB := Parse(b)
	if !okA || !okB {
		return false, false
	}
	ya, ma, da := ta.Date()
	yb, mb, db := tb.Date()
	return ya == yb && ma == mb && da == db, true
}

// Age returns whole years between birth and ref, accounting for a
// birthday that has not yet occurred in the reference year.
func Age(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years
}

// AgeAt computes the subject's age on refDate given a birth date
// string. When refDate is unparsable, today is used.
func AgeAt(birthDate, refDate string) (int, bool) {
	birth, ok := Parse(birthDate)
	if !ok {
		return 0, false
	}
	ref, ok := Parse(refDate)
	if !ok {
		ref = time.Now()
	}
	return Age(birth, ref), true
}

// RecencyBucket buckets an article date by distance from now.
type RecencyBucket string

const (
	RecencyWithin12 RecencyBucket = "within 12 months"
	Recency12To36   RecencyBucket = "12-36 months"
	RecencyOver36   RecencyBucket = "over 36 months"
	RecencyUnknown  RecencyBucket = "unknown"
)

// Bucket classifies articleDate relative to now.
func Bucket(articleDate string, now time.Time) RecencyBucket {
	t, ok := Parse(articleDate)
	if !ok {
		return RecencyUnknown
	}
	months := now.Sub(t).Hours() / 24 / 30.44
	switch {
	case months < 12:
		return RecencyWithin12
	case months < 36:
		return Recency12To36
	default:
		return RecencyOver36
	}
}
