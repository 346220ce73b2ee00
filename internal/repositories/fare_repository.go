package repositories

import (
	"context"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

type FareRepository struct {
	DB intdb.DBTX
}

// FindByTransportID returns quotes cheapest first; equal fares keep insertion order.
func (r FareRepository) FindByTransportID(ctx context.Context, transID domain.ID) ([]models.FareQuote, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ride_id, trans_id, app_name, fare, estimated_time
		FROM RideFare
		WHERE trans_id = ?
		ORDER BY fare ASC, ride_id ASC`, transID)
	if err != nil {
		return nil, storageErr("find fare quotes", err)
	}
	defer rows.Close()

	out := []models.FareQuote{}
	for rows.Next() {
		var q models.FareQuote
		if err := rows.Scan(&q.ID, &q.TransportID, &q.AppName, &q.Fare, &q.EstimatedTime); err != nil {
			return nil, storageErr("find fare quotes", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("find fare quotes", err)
	}
	return out, nil
}

func (r FareRepository) Create(ctx context.Context, q models.FareQuote) (domain.ID, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO RideFare (trans_id, app_name, fare, estimated_time) VALUES (?, ?, ?, ?)`,
		q.TransportID, q.AppName, q.Fare, q.EstimatedTime)
	if err != nil {
		return 0, storageErr("create fare quote", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("create fare quote", err)
	}
	return domain.ID(id), nil
}
