package igc

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/twpayne/go-geom"
)

// AltitudeMode selects which of the two recorded altitude sources is
// emitted per point, if any.
type AltitudeMode int

const (
	// AltitudeNone omits altitude; points are XYM (lon, lat, time).
	AltitudeNone AltitudeMode = iota
	// AltitudeGPS emits the GNSS altitude; points are XYZM.
	AltitudeGPS
	// AltitudeBarometric emits the pressure altitude; points are XYZM.
	AltitudeBarometric
)

func ParseAltitudeMode(s string) (AltitudeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AltitudeNone, nil
	case "gps":
		return AltitudeGPS, nil
	case "barometric":
		return AltitudeBarometric, nil
	}
	return AltitudeNone, fmt.Errorf("unknown altitude mode %q", s)
}

func (m AltitudeMode) String() string {
	switch m {
	case AltitudeGPS:
		return "gps"
	case AltitudeBarometric:
		return "barometric"
	default:
		return "none"
	}
}

// Transform optionally reprojects a decoded longitude/latitude pair.
// The decoder itself always produces geographic WGS84 degrees.
type Transform func(x, y float64) (float64, float64)

// Decoder decodes one IGC document per ReadFeatures call. The zero
// value decodes without altitude and without reprojection. A Decoder
// holds no per-document state, so one instance may serve concurrent
// calls.
type Decoder struct {
	AltitudeMode AltitudeMode
	Transform    Transform
}

// Feature is one decoded flight: the track line string (layout XYM,
// or XYZM when an altitude mode is set; M is Unix seconds) plus the
// header properties keyed by their three-letter mnemonic.
type Feature struct {
	Track      *geom.LineString
	Properties map[string]string
}

var (
	// ErrEncodingUnsupported reports that no IGC write path exists.
	ErrEncodingUnsupported = errors.New("igc: encoding not supported")
	// ErrGeometryUnsupported reports that tracks can only be read as
	// features, never as bare geometries.
	ErrGeometryUnsupported = errors.New("igc: reading bare geometries not supported")
)

// ReadFeatures decodes a whole IGC document. Lines that fail their
// record layout are skipped; a document with no decodable fix yields
// an empty slice, not an error. At most one feature is produced.
func (d *Decoder) ReadFeatures(data string) []*Feature {
	dc := dateContext{year: 2000, month: time.January, day: 1}
	var seq sequencer
	var flat []float64
	props := map[string]string{}

	sc := bufio.NewScanner(strings.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(scanLines)
	for sc.Scan() {
		rec := classify(sc.Text())
		switch rec.kind {
		case recordFix:
			f := rec.fix
			t := seq.next(dc, f.hour, f.minute, f.second)
			x, y := f.lon(), f.lat()
			if d.Transform != nil {
				x, y = d.Transform(x, y)
			}
			switch d.AltitudeMode {
			case AltitudeGPS:
				flat = append(flat, x, y, float64(f.gnssAlt), float64(t))
			case AltitudeBarometric:
				flat = append(flat, x, y, float64(f.pressureAlt), float64(t))
			default:
				flat = append(flat, x, y, float64(t))
			}
		case recordDate:
			dc = rec.date.context()
		case recordHeader:
			props[rec.key] = rec.value
		}
	}

	if len(flat) == 0 {
		return []*Feature{}
	}
	layout := geom.XYZM
	if d.AltitudeMode == AltitudeNone {
		layout = geom.XYM
	}
	return []*Feature{{
		Track:      geom.NewLineStringFlat(layout, flat),
		Properties: props,
	}}
}

// ReadGeometry is not supported: IGC tracks only exist with their
// header properties attached. Use ReadFeatures.
func (d *Decoder) ReadGeometry(data string) (geom.T, error) {
	return nil, ErrGeometryUnsupported
}

// WriteFeatures is not supported: there is no IGC encoding path.
func (d *Decoder) WriteFeatures(features []*Feature) (string, error) {
	return "", ErrEncodingUnsupported
}

// scanLines is a bufio.SplitFunc accepting \r\n, \r, or \n as line
// terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			return i + 1, data[:i], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if atEOF {
				return i + 1, data[:i], nil
			}
			// Need one more byte to tell \r from \r\n.
			return 0, nil, nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
