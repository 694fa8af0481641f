package domain

// SavedLink is a user-to-destination bookmark. The (UserID, DestinationID)
// pair is unique; saving an already-saved destination is a no-op.
type SavedLink struct {
	UserID        int64 `db:"user_id"`
	DestinationID int64 `db:"destination_id"`
}
