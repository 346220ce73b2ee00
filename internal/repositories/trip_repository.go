package repositories

import (
	"context"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

const tripSelect = `
	SELECT t.trip_id, t.user_id, t.source_id, t.dest_id, t.selected_mode,
	       t.total_cost, t.total_duration, t.comfort_score, t.created_at,
	       s.name, s.city, s.state,
	       d.name, d.city, d.state
	FROM Trip t
	JOIN Destination s ON t.source_id = s.dest_id
	JOIN Destination d ON t.dest_id = d.dest_id`

type TripRepository struct {
	DB intdb.DBTX
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID, &t.UserID, &t.SourceID, &t.DestID, &t.SelectedMode,
		&t.TotalCost, &t.TotalDuration, &t.ComfortScore, &t.CreatedAt,
		&t.SourceName, &t.SourceCity, &t.SourceState,
		&t.DestName, &t.DestCity, &t.DestState,
	)
	return t, err
}

func (r TripRepository) Create(ctx context.Context, rec models.TripRecord) (domain.ID, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO Trip (user_id, source_id, dest_id, selected_mode, total_cost, total_duration, comfort_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`,
		rec.UserID, rec.SourceID, rec.DestID, string(rec.SelectedMode), rec.TotalCost, rec.TotalDuration, rec.ComfortScore)
	if err != nil {
		return 0, storageErr("create trip", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("create trip", err)
	}
	return domain.ID(id), nil
}

// FindByUser returns the user's trips, newest first.
func (r TripRepository) FindByUser(ctx context.Context, userID domain.ID) ([]models.Trip, error) {
	rows, err := r.DB.QueryContext(ctx, tripSelect+`
	WHERE t.user_id = ?
	ORDER BY t.created_at DESC, t.trip_id DESC`, userID)
	if err != nil {
		return nil, storageErr("list trips", err)
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, storageErr("list trips", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list trips", err)
	}
	return out, nil
}

// FindByID only returns trips owned by userID.
func (r TripRepository) FindByID(ctx context.Context, tripID, userID domain.ID) (models.Trip, error) {
	row := r.DB.QueryRowContext(ctx, tripSelect+`
	WHERE t.trip_id = ? AND t.user_id = ?`, tripID, userID)
	t, err := scanTrip(row)
	if err != nil {
		return models.Trip{}, notFoundOr("trip", "get trip", err)
	}
	return t, nil
}

// Delete removes an owned trip and reports whether a row was deleted.
func (r TripRepository) Delete(ctx context.Context, tripID, userID domain.ID) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM Trip WHERE trip_id = ? AND user_id = ?`, tripID, userID)
	if err != nil {
		return false, storageErr("delete trip", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("delete trip", err)
	}
	return n > 0, nil
}
