package igc

import (
	"math"
	"testing"

	"github.com/twpayne/go-geom"
)

const sampleDoc = "HFDTE230820\nB1011105000000N00100000EA0012300089"

func decodeOne(t *testing.T, d *Decoder, data string) *Feature {
	t.Helper()
	feats := d.ReadFeatures(data)
	if len(feats) != 1 {
		t.Fatalf("features=%d want 1", len(feats))
	}
	return feats[0]
}

func TestReadFeatures_GPSAltitude(t *testing.T) {
	d := &Decoder{AltitudeMode: AltitudeGPS}
	f := decodeOne(t, d, sampleDoc)
	if f.Track.Layout() != geom.XYZM {
		t.Fatalf("layout=%v want XYZM", f.Track.Layout())
	}
	want := []float64{1.0, 50.0, 123, 1598177470}
	got := f.Track.FlatCoords()
	if len(got) != len(want) {
		t.Fatalf("flat coords=%v want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("coord[%d]=%v want %v", i, got[i], want[i])
		}
	}
	if len(f.Properties) != 0 {
		t.Fatalf("properties=%v want empty", f.Properties)
	}
}

func TestReadFeatures_BarometricAltitude(t *testing.T) {
	d := &Decoder{AltitudeMode: AltitudeBarometric}
	f := decodeOne(t, d, sampleDoc)
	if z := f.Track.FlatCoords()[2]; z != 89 {
		t.Fatalf("z=%v want 89", z)
	}
}

func TestReadFeatures_NoAltitude(t *testing.T) {
	var d Decoder
	f := decodeOne(t, &d, sampleDoc)
	if f.Track.Layout() != geom.XYM {
		t.Fatalf("layout=%v want XYM", f.Track.Layout())
	}
	got := f.Track.FlatCoords()
	if len(got) != 3 {
		t.Fatalf("flat coords=%v want 3 components", got)
	}
	if got[2] != 1598177470 {
		t.Fatalf("t=%v want 1598177470", got[2])
	}
}

func TestReadFeatures_NoFixesIsEmpty(t *testing.T) {
	var d Decoder
	for _, data := range []string{
		"",
		"HFPLTPILOTINCHARGE:John Doe",
		"XGARBAGE\nC5000000N00100000E\n",
	} {
		if feats := d.ReadFeatures(data); len(feats) != 0 {
			t.Fatalf("features=%d for %q, want 0", len(feats), data)
		}
	}
}

func TestReadFeatures_GarbageLinesSkipped(t *testing.T) {
	var d Decoder
	doc := "XGARBAGE\n" + sampleDoc + "\nB10x1105000000N00100000EA0012300089\nXGARBAGE"
	f := decodeOne(t, &d, doc)
	if n := f.Track.NumCoords(); n != 1 {
		t.Fatalf("points=%d want 1", n)
	}
}

func TestReadFeatures_MidnightRollover(t *testing.T) {
	var d Decoder
	doc := "HFDTE230820\n" +
		"B2359585000000N00100000EA0012300089\n" +
		"B0000025000000N00100000EA0012300089"
	f := decodeOne(t, &d, doc)
	got := f.Track.FlatCoords()
	t0, t1 := got[2], got[5]
	if t1-t0 != 4 {
		t.Fatalf("t1-t0=%v want 4", t1-t0)
	}
}

func TestReadFeatures_TwoMidnightsWithoutDateHeader(t *testing.T) {
	var d Decoder
	doc := "HFDTE230820\n" +
		"B2359585000000N00100000EA0012300089\n" +
		"B0000025000000N00100000EA0012300089\n" +
		"B2359595000000N00100000EA0012300089\n" +
		"B0000015000000N00100000EA0012300089"
	f := decodeOne(t, &d, doc)
	got := f.Track.FlatCoords()
	last := math.Inf(-1)
	for i := 2; i < len(got); i += 3 {
		if got[i] < last {
			t.Fatalf("timestamps not monotonic: %v", got)
		}
		last = got[i]
	}
	// Fourth fix lands two days past the header date, 86403s after
	// the first fix.
	if got[11]-got[2] != 86403 {
		t.Fatalf("span=%v want 86403", got[11]-got[2])
	}
}

func TestReadFeatures_DateHeaderMidDocument(t *testing.T) {
	var d Decoder
	doc := "HFDTE230820\n" +
		"B1011105000000N00100000EA0012300089\n" +
		"HFDTE240820\n" +
		"B1011105000000N00100000EA0012300089"
	f := decodeOne(t, &d, doc)
	got := f.Track.FlatCoords()
	if got[5]-got[2] != 86400 {
		t.Fatalf("delta=%v want 86400", got[5]-got[2])
	}
}

func TestReadFeatures_DefaultEpochDate(t *testing.T) {
	// No HFDTE at all: fixes are dated 2000-01-01.
	var d Decoder
	f := decodeOne(t, &d, "B0000005000000N00100000EA0012300089")
	if got := f.Track.FlatCoords()[2]; got != 946684800 {
		t.Fatalf("t=%v want 946684800", got)
	}
}

func TestReadFeatures_Properties(t *testing.T) {
	var d Decoder
	doc := "HFDTE230820\n" +
		"HFPLTPILOTINCHARGE: John Doe \n" +
		"HFGTYGLIDERTYPE:ASK 21\n" +
		"HFPLTPILOTINCHARGE:Jane Roe\n" +
		"B1011105000000N00100000EA0012300089"
	f := decodeOne(t, &d, doc)
	if got := f.Properties["PLT"]; got != "Jane Roe" {
		t.Fatalf("PLT=%q want last value", got)
	}
	if got := f.Properties["GTY"]; got != "ASK 21" {
		t.Fatalf("GTY=%q", got)
	}
	if _, ok := f.Properties["DTE"]; ok {
		t.Fatalf("date header leaked into properties: %v", f.Properties)
	}
}

func TestReadFeatures_VoidFixesKept(t *testing.T) {
	var d Decoder
	f := decodeOne(t, &d, "B1011105000000N00100000EV0012300089")
	if f.Track.NumCoords() != 1 {
		t.Fatalf("void fix should still be emitted")
	}
}

func TestReadFeatures_LineTerminators(t *testing.T) {
	var d Decoder
	for _, sep := range []string{"\n", "\r", "\r\n"} {
		doc := "HFDTE230820" + sep + "B1011105000000N00100000EA0012300089" + sep
		f := decodeOne(t, &d, doc)
		if f.Track.FlatCoords()[2] != 1598177470 {
			t.Fatalf("sep=%q t=%v", sep, f.Track.FlatCoords()[2])
		}
	}
}

func TestReadFeatures_Transform(t *testing.T) {
	d := &Decoder{Transform: func(x, y float64) (float64, float64) {
		return x + 100, y - 10
	}}
	f := decodeOne(t, d, sampleDoc)
	got := f.Track.FlatCoords()
	if got[0] != 101.0 || got[1] != 40.0 {
		t.Fatalf("transformed coord=%v,%v", got[0], got[1])
	}
}

func TestReadFeatures_IndependentCalls(t *testing.T) {
	// Date context and rollover state never leak between documents.
	var d Decoder
	_ = d.ReadFeatures("HFDTE230820\nB2359585000000N00100000EA0012300089")
	f := decodeOne(t, &d, "B0000005000000N00100000EA0012300089")
	if got := f.Track.FlatCoords()[2]; got != 946684800 {
		t.Fatalf("t=%v want fresh 2000-01-01 context", got)
	}
}

func TestParseAltitudeMode(t *testing.T) {
	cases := []struct {
		in   string
		want AltitudeMode
	}{
		{"", AltitudeNone},
		{"none", AltitudeNone},
		{"gps", AltitudeGPS},
		{"GPS", AltitudeGPS},
		{" barometric ", AltitudeBarometric},
	}
	for _, tc := range cases {
		got, err := ParseAltitudeMode(tc.in)
		if err != nil {
			t.Fatalf("ParseAltitudeMode(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAltitudeMode(%q)=%v want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseAltitudeMode("pressure"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestUnsupportedOperations(t *testing.T) {
	var d Decoder
	if _, err := d.ReadGeometry(sampleDoc); err != ErrGeometryUnsupported {
		t.Fatalf("ReadGeometry err=%v", err)
	}
	if _, err := d.WriteFeatures(nil); err != ErrEncodingUnsupported {
		t.Fatalf("WriteFeatures err=%v", err)
	}
}
