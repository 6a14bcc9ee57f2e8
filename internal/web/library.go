package web

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"igctrack/internal/igc"
)

// Library holds the decoded flights behind the HTTP API. Flights are
// decoded once per Reload and served from memory; the flight name is
// the file base name without its extension.
type Library struct {
	dir string
	dec *igc.Decoder

	mu      sync.RWMutex
	flights map[string]*igc.Feature
}

func NewLibrary(dir string, dec *igc.Decoder) *Library {
	return &Library{dir: dir, dec: dec, flights: map[string]*igc.Feature{}}
}

// Reload rescans the directory. A file that fails to read or decodes
// to no fixes is simply absent from the library, same as a file that
// was never there.
func (l *Library) Reload() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("scan tracks dir: %w", err)
	}

	flights := map[string]*igc.Feature{}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".igc") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(l.dir, e.Name()))
		if err != nil {
			continue
		}
		feats := l.dec.ReadFeatures(string(b))
		if len(feats) == 0 {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		flights[name] = feats[0]
	}

	l.mu.Lock()
	l.flights = flights
	l.mu.Unlock()
	return nil
}

func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.flights))
	for n := range l.flights {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (l *Library) Get(name string) (*igc.Feature, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.flights[name]
	return f, ok
}
