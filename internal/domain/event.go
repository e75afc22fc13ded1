package domain

import "time"

// Event is a catalog change notification published after a successful
// mutation. Kind is "<entity>.<verb>", e.g. "character.created".
type Event struct {
	Kind string    `json:"kind"`
	ID   int64     `json:"id"`
	At   time.Time `json:"at"`
}
