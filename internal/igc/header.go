package igc

import "strings"

// dateHeader is the HFDTE record payload: HFDTE + ddmmyy, trailing
// bytes ignored. Values are carried as recorded; no range checks.
type dateHeader struct {
	day   int
	month int
	year  int // two digits as recorded, interpreted as 2000+yy
}

func parseDateHeader(line string) (dateHeader, bool) {
	if len(line) < 11 || !strings.HasPrefix(line, "HFDTE") {
		return dateHeader{}, false
	}
	var h dateHeader
	var ok bool
	if h.day, ok = digits(line[5:7]); !ok {
		return dateHeader{}, false
	}
	if h.month, ok = digits(line[7:9]); !ok {
		return dateHeader{}, false
	}
	if h.year, ok = digits(line[9:11]); !ok {
		return dateHeader{}, false
	}
	return h, true
}

// parseHeader decodes a generic H record: 'H', one source byte, a
// three-letter mnemonic, then a colon-delimited value, e.g.
// "HFPLTPILOTINCHARGE:John Doe". The value keeps everything after the
// first colon, trimmed.
func parseHeader(line string) (key, value string, ok bool) {
	if len(line) < 6 || line[0] != 'H' {
		return "", "", false
	}
	key = line[2:5]
	for i := 0; i < len(key); i++ {
		if key[i] < 'A' || key[i] > 'Z' {
			return "", "", false
		}
	}
	colon := strings.IndexByte(line[5:], ':')
	if colon < 0 {
		return "", "", false
	}
	return key, strings.TrimSpace(line[5+colon+1:]), true
}
