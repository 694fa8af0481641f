package domain

// Image references a stored picture of a destination. ImagePath is an opaque
// location string produced by the image library; the row never holds file
// content.
type Image struct {
	ID            int64  `db:"id"`
	DestinationID int64  `db:"destination_id"`
	ImagePath     string `db:"image_path"`
}
