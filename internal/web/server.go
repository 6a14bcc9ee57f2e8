package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"igctrack/internal/geojson"
	"igctrack/internal/igc"
)

// StreamDefaults are the replay settings used when a stream request
// does not override them via query parameters.
type StreamDefaults struct {
	Speed float64
	Loop  bool
}

// FlightSummary is a small, UI-friendly view of one decoded flight.
type FlightSummary struct {
	Name       string            `json:"name"`
	Points     int               `json:"points"`
	StartUTC   string            `json:"start_utc"`
	EndUTC     string            `json:"end_utc"`
	Properties map[string]string `json:"properties,omitempty"`
}

func summarize(name string, f *igc.Feature) FlightSummary {
	flat := f.Track.FlatCoords()
	stride := f.Track.Stride()
	return FlightSummary{
		Name:       name,
		Points:     len(flat) / stride,
		StartUTC:   time.Unix(int64(flat[stride-1]), 0).UTC().Format(time.RFC3339),
		EndUTC:     time.Unix(int64(flat[len(flat)-1]), 0).UTC().Format(time.RFC3339),
		Properties: f.Properties,
	}
}

func Handler(lib *Library, stream StreamDefaults) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/flights", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		names := lib.Names()
		out := make([]FlightSummary, 0, len(names))
		for _, n := range names {
			if f, ok := lib.Get(n); ok {
				out = append(out, summarize(n, f))
			}
		}
		writeJSON(w, out)
	})

	mux.HandleFunc("/api/flights/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/api/flights/")
		if name, ok := strings.CutSuffix(rest, "/stream"); ok {
			serveStream(w, r, lib, name, stream)
			return
		}

		f, ok := lib.Get(rest)
		if !ok {
			http.Error(w, "flight not found", http.StatusNotFound)
			return
		}
		b, err := geojson.Marshal(geojson.Feature(f), true)
		if err != nil {
			http.Error(w, "marshal failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write(b)
		_, _ = w.Write([]byte("\n"))
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, "marshal failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
	_, _ = w.Write([]byte("\n"))
}

func Serve(ctx context.Context, listenAddr string, lib *Library, stream StreamDefaults) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           Handler(lib, stream),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// No WriteTimeout: stream connections stay open for the
		// duration of a replay.
		IdleTimeout:    30 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MiB
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
