// Package models defines the persistent record types of the doorbell relay:
// rings awaiting an answer, requested picture tasks, and registered devices.
package models

import "time"

// RingAnswer is a user's response to a ring. Disposition true means the
// visitor is admitted, false means denied.
type RingAnswer struct {
	UID         string `json:"uid"`
	Disposition bool   `json:"disposition"`
}

// Ring is a doorbell press event. Answer stays nil until a user responds
// from the companion app.
type Ring struct {
	ID        string      `json:"id"`
	Date      time.Time   `json:"date"`
	ImagePath string      `json:"imagePath"`
	Answer    *RingAnswer `json:"answer,omitempty"`
}

// Answered reports whether a response has been recorded for this ring.
func (r *Ring) Answered() bool {
	return r != nil && r.Answer != nil
}
