package repositories

import (
	"context"
	"database/sql"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

const destinationColumns = `dest_id, name, city, state, pincode`

type DestinationRepository struct {
	DB intdb.DBTX
}

func scanDestinations(rows *sql.Rows) ([]models.Destination, error) {
	defer rows.Close()
	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.City, &d.State, &d.Pincode); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) FindAll(ctx context.Context) ([]models.Destination, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+destinationColumns+` FROM Destination ORDER BY name`)
	if err != nil {
		return nil, storageErr("list destinations", err)
	}
	out, err := scanDestinations(rows)
	if err != nil {
		return nil, storageErr("list destinations", err)
	}
	return out, nil
}

func (r DestinationRepository) FindByID(ctx context.Context, id domain.ID) (models.Destination, error) {
	var d models.Destination
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+destinationColumns+` FROM Destination WHERE dest_id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.City, &d.State, &d.Pincode)
	if err != nil {
		return models.Destination{}, notFoundOr("destination", "get destination", err)
	}
	return d, nil
}

// SearchByName matches name as a substring, ordered by name.
func (r DestinationRepository) SearchByName(ctx context.Context, term string) ([]models.Destination, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+destinationColumns+` FROM Destination WHERE name LIKE ? ORDER BY name`, "%"+term+"%")
	if err != nil {
		return nil, storageErr("search destinations", err)
	}
	out, err := scanDestinations(rows)
	if err != nil {
		return nil, storageErr("search destinations", err)
	}
	return out, nil
}

func (r DestinationRepository) Create(ctx context.Context, in models.DestinationInput) (domain.ID, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO Destination (name, state, city, pincode) VALUES (?, ?, ?, ?)`,
		in.Name, in.State, in.City, in.Pincode)
	if err != nil {
		return 0, storageErr("create destination", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("create destination", err)
	}
	return domain.ID(id), nil
}

func (r DestinationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM Destination`).Scan(&n); err != nil {
		return 0, storageErr("count destinations", err)
	}
	return n, nil
}
