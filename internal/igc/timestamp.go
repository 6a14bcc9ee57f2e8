package igc

import "time"

// dateContext is the calendar date applied to fix times. IGC fixes
// carry time of day only; the date arrives separately in the HFDTE
// header and persists for the rest of the document. Before any date
// header is seen, fixes are dated 2000-01-01.
type dateContext struct {
	year  int
	month time.Month
	day   int
}

func (h dateHeader) context() dateContext {
	// Out-of-range day/month values are passed through; time.Date
	// normalizes them forward when the timestamp is built.
	return dateContext{year: 2000 + h.year, month: time.Month(h.month), day: h.day}
}

// sequencer turns per-fix times of day into absolute timestamps that
// never run backwards. A fix whose wall time is earlier than its
// predecessor's means the recorder crossed UTC midnight without a new
// date header; the fix is pushed forward one day at a time until
// order is restored.
type sequencer struct {
	last     int64
	haveLast bool
}

func (s *sequencer) next(dc dateContext, hour, minute, second int) int64 {
	t := time.Date(dc.year, dc.month, dc.day, hour, minute, second, 0, time.UTC).Unix()
	if s.haveLast {
		for n := 1; t < s.last; n++ {
			t = time.Date(dc.year, dc.month, dc.day+n, hour, minute, second, 0, time.UTC).Unix()
		}
	}
	s.last = t
	s.haveLast = true
	return t
}
