package repositories

import (
	"context"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

type TransportRepository struct {
	DB intdb.DBTX
}

// FindByRoute returns the options for the ordered (source, dest) pair in
// insertion order.
func (r TransportRepository) FindByRoute(ctx context.Context, sourceID, destID domain.ID) ([]models.TransportOption, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT trans_id, source_id, dest_id, mode, base_cost, duration, comfort_level
		FROM TransportOption
		WHERE source_id = ? AND dest_id = ?
		ORDER BY trans_id`, sourceID, destID)
	if err != nil {
		return nil, storageErr("find transport options", err)
	}
	defer rows.Close()

	out := []models.TransportOption{}
	for rows.Next() {
		var o models.TransportOption
		if err := rows.Scan(&o.ID, &o.SourceID, &o.DestID, &o.Mode, &o.BaseCost, &o.Duration, &o.ComfortLevel); err != nil {
			return nil, storageErr("find transport options", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("find transport options", err)
	}
	return out, nil
}

func (r TransportRepository) Create(ctx context.Context, o models.TransportOption) (domain.ID, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO TransportOption (source_id, dest_id, mode, base_cost, duration, comfort_level)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.SourceID, o.DestID, string(o.Mode), o.BaseCost, o.Duration, o.ComfortLevel)
	if err != nil {
		return 0, storageErr("create transport option", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("create transport option", err)
	}
	return domain.ID(id), nil
}
