package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

const destinationColumns = `id, name, location, description, price, popularity, tourist_spots, local_spots, shops`

const prefixedDestinationColumns = `destinations.id, destinations.name, destinations.location, destinations.description,
	destinations.price, destinations.popularity, destinations.tourist_spots, destinations.local_spots, destinations.shops`

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

const insertDestinationSQL = `
	INSERT INTO destinations (name, location, description, price, popularity, tourist_spots, local_spots, shops)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

func (r *DestinationRepository) Create(ctx context.Context, fields domain.DestinationFields) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertDestinationSQL,
		fields.Name, fields.Location, fields.Description, fields.Price,
		fields.Popularity, fields.TouristSpots, fields.LocalSpots, fields.Shops)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

// CreateWithImages inserts the destination row and one image row per path
// inside one transaction. A destination must never become visible without
// its declared images, so any failure rolls the whole unit back.
func (r *DestinationRepository) CreateWithImages(ctx context.Context, fields domain.DestinationFields, imagePaths []string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %v", ports.ErrTransactionAborted, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertDestinationSQL,
		fields.Name, fields.Location, fields.Description, fields.Price,
		fields.Popularity, fields.TouristSpots, fields.LocalSpots, fields.Shops)
	if err != nil {
		return 0, fmt.Errorf("%w: insert destination: %v", ports.ErrTransactionAborted, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: generated id: %v", ports.ErrTransactionAborted, err)
	}

	for _, path := range imagePaths {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO images (destination_id, image_path) VALUES (?, ?)`, id, path); err != nil {
			return 0, fmt.Errorf("%w: insert image %q: %v", ports.ErrTransactionAborted, path, classify(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", ports.ErrTransactionAborted, err)
	}
	return id, nil
}

func (r *DestinationRepository) Update(ctx context.Context, id int64, fields domain.DestinationFields) error {
	const query = `
		UPDATE destinations
		SET name = ?, location = ?, description = ?, price = ?, popularity = ?,
		    tourist_spots = ?, local_spots = ?, shops = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		fields.Name, fields.Location, fields.Description, fields.Price,
		fields.Popularity, fields.TouristSpots, fields.LocalSpots, fields.Shops, id)
	if err != nil {
		return classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = ?`, id)
	if err != nil {
		return classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	query := fmt.Sprintf(`SELECT %s FROM destinations WHERE id = ?`, destinationColumns)

	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, classify(err)
	}
	return &dest, nil
}

// List orders by name or popularity in SQL. For the price key it returns
// name order and leaves the numeric sort to the caller; ranked price text
// cannot be compared inside the store.
func (r *DestinationRepository) List(ctx context.Context, sort domain.SortKey) ([]domain.Destination, error) {
	order := `ORDER BY name COLLATE NOCASE ASC, id ASC`
	if sort == domain.SortByPopularity {
		order = `ORDER BY popularity DESC, name COLLATE NOCASE ASC, id ASC`
	}
	query := fmt.Sprintf(`SELECT %s FROM destinations %s`, destinationColumns, order)

	dests := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &dests, query); err != nil {
		return nil, classify(err)
	}
	return dests, nil
}

func (r *DestinationRepository) Search(ctx context.Context, substring string) ([]domain.Destination, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM destinations
		WHERE instr(lower(name), lower(?)) > 0 OR instr(lower(location), lower(?)) > 0
		ORDER BY name COLLATE NOCASE ASC, id ASC
	`, destinationColumns)

	dests := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &dests, query, substring, substring); err != nil {
		return nil, classify(err)
	}
	return dests, nil
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
