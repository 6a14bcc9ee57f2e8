package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/twpayne/go-geom"

	"igctrack/internal/igc"
)

// Point is one replayed track sample. At is its offset from the first
// point of the flight; Alt is nil for tracks decoded without altitude.
type Point struct {
	At   time.Duration
	Time time.Time
	Lon  float64
	Lat  float64
	Alt  *float64
}

// FromFeature flattens a decoded flight into replayable points. The
// track's M ordinate carries Unix seconds; offsets are taken relative
// to the first point.
func FromFeature(f *igc.Feature) []Point {
	flat := f.Track.FlatCoords()
	stride := f.Track.Stride()
	if len(flat) < stride {
		return nil
	}

	start := flat[stride-1]
	pts := make([]Point, 0, len(flat)/stride)
	for i := 0; i+stride <= len(flat); i += stride {
		sec := flat[i+stride-1]
		p := Point{
			At:   time.Duration((sec - start) * float64(time.Second)),
			Time: time.Unix(int64(sec), 0).UTC(),
			Lon:  flat[i],
			Lat:  flat[i+1],
		}
		if f.Track.Layout() == geom.XYZM {
			alt := flat[i+2]
			p.Alt = &alt
		}
		pts = append(pts, p)
	}
	return pts
}

type Sleeper interface {
	Sleep(d time.Duration)
}

type realSleeper struct{}

func (realSleeper) Sleep(d time.Duration) { time.Sleep(d) }

// Play replays points with their relative timing.
//
// The callback is invoked once per point, in order. speed: 1.0 = real
// time, 2.0 = 2x speed (half waits), 0.5 = half speed. With loop set,
// playback restarts from the first point until the callback fails.
func Play(points []Point, speed float64, loop bool, sleeper Sleeper, cb func(Point) error) error {
	if speed <= 0 {
		return fmt.Errorf("speed must be > 0")
	}
	if sleeper == nil {
		sleeper = realSleeper{}
	}
	if cb == nil {
		return errors.New("callback is nil")
	}
	if len(points) == 0 {
		return errors.New("no points")
	}

	for {
		var lastAt time.Duration
		var haveLast bool

		for _, p := range points {
			if haveLast {
				wait := p.At - lastAt
				if wait < 0 {
					wait = 0
				}
				wait = time.Duration(float64(wait) / speed)
				if wait > 0 {
					sleeper.Sleep(wait)
				}
			}

			if err := cb(p); err != nil {
				return err
			}

			lastAt = p.At
			haveLast = true
		}

		if !loop {
			return nil
		}
	}
}
