package igc

// B record: one position-and-time sample. Mandatory fields occupy
// fixed columns; extension bytes past column 34 are permitted and
// ignored.
//
//	0      'B'
//	1-6    time hhmmss (UTC)
//	7-13   latitude, degrees (2) + minute thousandths (5)
//	14     N/S
//	15-22  longitude, degrees (3) + minute thousandths (5)
//	23     E/W
//	24     fix validity, A or V
//	25-29  GNSS altitude, meters
//	30-34  pressure altitude, meters
type fixRecord struct {
	hour   int
	minute int
	second int

	latDeg        int
	latThousandth int
	northSouth    byte

	lonDeg        int
	lonThousandth int
	eastWest      byte

	// validity is decoded but not used to filter output; void fixes
	// are emitted like any other and left to callers to post-process.
	validity byte

	gnssAlt     int
	pressureAlt int
}

const fixRecordLen = 35

func parseFix(line string) (fixRecord, bool) {
	if len(line) < fixRecordLen || line[0] != 'B' {
		return fixRecord{}, false
	}
	var f fixRecord
	var ok bool
	if f.hour, ok = digits(line[1:3]); !ok {
		return fixRecord{}, false
	}
	if f.minute, ok = digits(line[3:5]); !ok {
		return fixRecord{}, false
	}
	if f.second, ok = digits(line[5:7]); !ok {
		return fixRecord{}, false
	}
	if f.latDeg, ok = digits(line[7:9]); !ok {
		return fixRecord{}, false
	}
	if f.latThousandth, ok = digits(line[9:14]); !ok {
		return fixRecord{}, false
	}
	f.northSouth = line[14]
	if f.northSouth != 'N' && f.northSouth != 'S' {
		return fixRecord{}, false
	}
	if f.lonDeg, ok = digits(line[15:18]); !ok {
		return fixRecord{}, false
	}
	if f.lonThousandth, ok = digits(line[18:23]); !ok {
		return fixRecord{}, false
	}
	f.eastWest = line[23]
	if f.eastWest != 'E' && f.eastWest != 'W' {
		return fixRecord{}, false
	}
	f.validity = line[24]
	if f.validity != 'A' && f.validity != 'V' {
		return fixRecord{}, false
	}
	if f.gnssAlt, ok = digits(line[25:30]); !ok {
		return fixRecord{}, false
	}
	if f.pressureAlt, ok = digits(line[30:35]); !ok {
		return fixRecord{}, false
	}
	return f, true
}

// lat converts the degrees/minute-thousandths pair to decimal degrees,
// negative in the southern hemisphere.
func (f fixRecord) lat() float64 {
	d := float64(f.latDeg) + float64(f.latThousandth)/60000.0
	if f.northSouth == 'S' {
		d = -d
	}
	return d
}

// lon converts the degrees/minute-thousandths pair to decimal degrees,
// negative in the western hemisphere.
func (f fixRecord) lon() float64 {
	d := float64(f.lonDeg) + float64(f.lonThousandth)/60000.0
	if f.eastWest == 'W' {
		d = -d
	}
	return d
}

// digits decodes a run of ASCII digits as a non-negative integer.
func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
