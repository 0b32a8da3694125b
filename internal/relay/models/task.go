package models

import "time"

// PictureTask is a request for an ad-hoc snapshot from the thing device.
// IsTaken flips to true once the fulfillment photo has been uploaded;
// ImagePath stays empty until then.
type PictureTask struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	ImagePath string    `json:"imagePath,omitempty"`
	IsTaken   bool      `json:"is_taken"`
}
