package model

import "time"

// Transcript is one chat exchange as stored by the optional transcript log.
type Transcript struct {
	ID        string
	CreatedAt time.Time
	Mode      string
	Route     string
	Message   string
	Reply     string
	OrderName string
}
