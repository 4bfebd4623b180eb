package gallery

import "time"

const (
	toastLifetime     = 3 * time.Second
	pressDuration     = 150 * time.Millisecond
	progressInterval  = 120 * time.Millisecond
	progressIncrement = 0.1
)

// dismissToastMsg expires the toast shown as seq.
type dismissToastMsg struct {
	seq int
}

// releaseMsg ends the press started as seq.
type releaseMsg struct {
	seq int
}

// progressTickMsg advances the progress toast shown as seq.
type progressTickMsg struct {
	seq int
}
