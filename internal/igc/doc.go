package igc

// Package igc decodes IGC flight-recorder logs into track geometry.
//
// It is intentionally small and geared toward map rendering:
// - B records become one XYM/XYZM line string per document
// - H records become a string property map
// - everything else is skipped without complaint
