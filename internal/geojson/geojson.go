package geojson

// Package geojson renders decoded flights as GeoJSON for map clients.
// The track's trailing M ordinate (Unix seconds) rides along in the
// coordinate arrays.

import (
	"encoding/json"

	geomjson "github.com/twpayne/go-geom/encoding/geojson"

	"igctrack/internal/igc"
)

// Feature converts one decoded flight to a GeoJSON feature carrying
// the header properties.
func Feature(f *igc.Feature) *geomjson.Feature {
	props := make(map[string]interface{}, len(f.Properties))
	for k, v := range f.Properties {
		props[k] = v
	}
	return &geomjson.Feature{Geometry: f.Track, Properties: props}
}

// Collection wraps a batch of decoded flights as a FeatureCollection.
func Collection(feats []*igc.Feature) *geomjson.FeatureCollection {
	fc := &geomjson.FeatureCollection{Features: make([]*geomjson.Feature, 0, len(feats))}
	for _, f := range feats {
		fc.Features = append(fc.Features, Feature(f))
	}
	return fc
}

func Marshal(v json.Marshaler, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
