package web

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"igctrack/internal/replay"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Viewer pages are served from anywhere.
	},
}

type streamPoint struct {
	Lon  float64  `json:"lon"`
	Lat  float64  `json:"lat"`
	Alt  *float64 `json:"alt,omitempty"`
	Time string   `json:"time"`
}

// serveStream replays a flight's points over a WebSocket at recorded
// cadence. Query parameters: speed (multiplier, > 0) and loop (1 or
// true) override the configured defaults.
func serveStream(w http.ResponseWriter, r *http.Request, lib *Library, name string, defaults StreamDefaults) {
	f, ok := lib.Get(name)
	if !ok {
		http.Error(w, "flight not found", http.StatusNotFound)
		return
	}

	speed := defaults.Speed
	if v := r.URL.Query().Get("speed"); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil || s <= 0 {
			http.Error(w, "bad speed", http.StatusBadRequest)
			return
		}
		speed = s
	}
	loop := defaults.Loop
	if v := r.URL.Query().Get("loop"); v != "" {
		loop = v == "1" || v == "true"
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		return
	}
	defer conn.Close()

	err = replay.Play(replay.FromFeature(f), speed, loop, nil, func(p replay.Point) error {
		return conn.WriteJSON(streamPoint{
			Lon:  p.Lon,
			Lat:  p.Lat,
			Alt:  p.Alt,
			Time: p.Time.Format(time.RFC3339),
		})
	})
	if err != nil {
		// Client hangups land here; nothing to do beyond noting it.
		log.Printf("stream ended flight=%s err=%v", name, err)
	}
}
