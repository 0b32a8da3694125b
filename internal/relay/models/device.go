package models

import "time"

// Device is a registered client of the relay: the doorbell thing itself or
// a companion app install. SecretHash is a bcrypt hash of the shared secret
// presented at login.
type Device struct {
	ID         string
	Name       string
	SecretHash []byte
	CreatedAt  time.Time
}
