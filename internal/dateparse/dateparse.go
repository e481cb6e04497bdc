// Package dateparse interprets the free-text start dates that the external
// event feed stores alongside proper timestamps. Feed entries were written
// by hand in several formats and two locales, so parsing tries an ordered
// list of layouts against Turkish month names first, then English.
package dateparse

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrUnparseable is returned when no layout matches under either locale.
// Callers must treat this as a hard precondition failure for join, not a
// warning.
var ErrUnparseable = errors.New("date string matches no supported format")

// layouts, in priority order. The first successful parse wins.
var layouts = []string{
	"2006-01-02 15:04",
	"02.01.2006 15:04",
	"2006-01-02",
	"02.01.2006",
	"2006-01-02T15:04:05Z0700",
	time.RFC3339,
	"02 Jan 2006, 15:04",
	"02 January 2006, 15:04",
}

// Turkish month names and abbreviations, mapped to the English spellings
// the time package understands. Longer names first so "Mayıs" is not
// clipped by the "May" abbreviation.
var turkishMonths = []struct{ tr, en string }{
	{"Ocak", "January"}, {"Şubat", "February"}, {"Mart", "March"},
	{"Nisan", "April"}, {"Mayıs", "May"}, {"Haziran", "June"},
	{"Temmuz", "July"}, {"Ağustos", "August"}, {"Eylül", "September"},
	{"Ekim", "October"}, {"Kasım", "November"}, {"Aralık", "December"},
	{"Oca", "Jan"}, {"Şub", "Feb"}, {"Mar", "Mar"},
	{"Nis", "Apr"}, {"May", "May"}, {"Haz", "Jun"},
	{"Tem", "Jul"}, {"Ağu", "Aug"}, {"Eyl", "Sep"},
	{"Eki", "Oct"}, {"Kas", "Nov"}, {"Ara", "Dec"},
}

// Parse interprets a free-text event date. Layouts are tried in order
// against the Turkish locale first, then English, returning the first
// successful parse in local time.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseable
	}

	for _, candidate := range []string{normalizeTurkish(s), s} {
		for _, layout := range layouts {
			if t, err := time.ParseInLocation(layout, candidate, time.Local); err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, ErrUnparseable
}

// normalizeTurkish rewrites Turkish month names into English so the
// month-name layouts can match. Numeric layouts are unaffected.
func normalizeTurkish(s string) string {
	for _, m := range turkishMonths {
		if strings.Contains(s, m.tr) {
			return strings.Replace(s, m.tr, m.en, 1)
		}
	}

	return s
}
