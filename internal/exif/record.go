package exif

import "time"

// Record holds the metadata extracted from a single image file.
// Pointer fields are nil when the file carries no such tag or the tag
// failed to convert.
type Record struct {
	Filename string  `json:"filename"`
	Filepath string  `json:"filepath"`
	FileSize float64 `json:"file_size"` // megabytes

	CameraMake   *string    `json:"camera_make,omitempty"`
	CameraModel  *string    `json:"camera_model,omitempty"`
	Lens         *string    `json:"lens,omitempty"`
	FocalLength  *float64   `json:"focal_length,omitempty"`
	Aperture     *float64   `json:"aperture,omitempty"`
	ShutterSpeed *string    `json:"shutter_speed,omitempty"`
	ISO          *int       `json:"iso,omitempty"`
	DateTime     *time.Time `json:"datetime,omitempty"`
	FlashUsed    *bool      `json:"flash_used,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`

	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"` // "portrait" or "landscape"
}
