package main

import (
	"flag"
	"log"
	"os"

	"igctrack/internal/geojson"
	"igctrack/internal/igc"
)

func main() {
	var modeStr, outPath string
	var compact bool
	flag.StringVar(&modeStr, "mode", "none", "Altitude mode: none, gps, or barometric")
	flag.StringVar(&outPath, "o", "", "Output path (default stdout)")
	flag.BoolVar(&compact, "compact", false, "Emit compact JSON")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: igc2geojson [-mode none|gps|barometric] [-o out.geojson] file.igc ...")
	}
	mode, err := igc.ParseAltitudeMode(modeStr)
	if err != nil {
		log.Fatalf("bad -mode: %v", err)
	}

	dec := &igc.Decoder{AltitudeMode: mode}
	var feats []*igc.Feature
	for _, path := range flag.Args() {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		fs := dec.ReadFeatures(string(b))
		if len(fs) == 0 {
			log.Printf("no fixes decoded file=%s", path)
			continue
		}
		feats = append(feats, fs...)
	}

	b, err := geojson.Marshal(geojson.Collection(feats), !compact)
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}
	b = append(b, '\n')

	if outPath == "" {
		_, _ = os.Stdout.Write(b)
		return
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
}
