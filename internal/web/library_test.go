package web

import (
	"os"
	"path/filepath"
	"testing"

	"igctrack/internal/igc"
)

const sampleIGC = "HFDTE230820\n" +
	"HFPLTPILOTINCHARGE:John Doe\n" +
	"B1011105000000N00100000EA0012300089\n" +
	"B1011125001000N00101000EA0012400090\n" +
	"B1011175002000N00102000EA0012500091\n"

func writeFlight(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
}

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()
	writeFlight(t, dir, "alpha.igc", sampleIGC)
	writeFlight(t, dir, "bravo.IGC", sampleIGC)
	writeFlight(t, dir, "nofix.igc", "HFPLTPILOTINCHARGE:John Doe\nXGARBAGE\n")
	writeFlight(t, dir, "notes.txt", "not a flight")

	lib := NewLibrary(dir, &igc.Decoder{AltitudeMode: igc.AltitudeGPS})
	if err := lib.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	return lib
}

func TestLibrary_ReloadScansIGCFiles(t *testing.T) {
	lib := newTestLibrary(t)

	names := lib.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "bravo" {
		t.Fatalf("names=%v", names)
	}

	f, ok := lib.Get("alpha")
	if !ok {
		t.Fatalf("expected alpha")
	}
	if f.Track.NumCoords() != 3 {
		t.Fatalf("points=%d want 3", f.Track.NumCoords())
	}
	if f.Properties["PLT"] != "John Doe" {
		t.Fatalf("properties=%v", f.Properties)
	}

	if _, ok := lib.Get("nofix"); ok {
		t.Fatalf("fixless file should be absent")
	}
	if _, ok := lib.Get("notes"); ok {
		t.Fatalf("non-igc file should be absent")
	}
}

func TestLibrary_ReloadMissingDir(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "nope"), &igc.Decoder{})
	if err := lib.Reload(); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
