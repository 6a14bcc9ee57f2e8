package igc

type recordKind int

const (
	recordIgnored recordKind = iota
	recordFix
	recordDate
	recordHeader
)

// record is the classified form of one input line. Exactly one of the
// payload fields is meaningful, selected by kind.
type record struct {
	kind  recordKind
	fix   fixRecord
	date  dateHeader
	key   string
	value string
}

// classify dispatches on the record letter and attempts the matching
// fixed-width decode. Lines that fail their layout, and record types
// this decoder does not handle (A, C, G, K, ...), come back ignored.
// A malformed line is never an error; the document decode carries on.
func classify(line string) record {
	if line == "" {
		return record{kind: recordIgnored}
	}
	switch line[0] {
	case 'B':
		if f, ok := parseFix(line); ok {
			return record{kind: recordFix, fix: f}
		}
	case 'H':
		// The date header would also satisfy the generic H layout if
		// it carried a colon, so it is always tried first.
		if d, ok := parseDateHeader(line); ok {
			return record{kind: recordDate, date: d}
		}
		if k, v, ok := parseHeader(line); ok {
			return record{kind: recordHeader, key: k, value: v}
		}
	}
	return record{kind: recordIgnored}
}
