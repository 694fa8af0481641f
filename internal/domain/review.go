package domain

// Review is a user's rating of a destination. Username is a denormalized
// copy of the author's name captured at submission time; it does not follow
// later account changes. Reviews are never edited.
type Review struct {
	ID            int64   `db:"id"`
	DestinationID int64   `db:"destination_id"`
	UserID        int64   `db:"user_id"`
	Username      string  `db:"username"`
	Rating        int     `db:"rating"`
	Comment       *string `db:"comment"`
}

// ReviewAggregate summarizes the reviews of one destination.
type ReviewAggregate struct {
	DestinationID int64
	TotalReviews  int
	AverageRating float64
}
