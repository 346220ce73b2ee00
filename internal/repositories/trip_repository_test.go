package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

var tripCols = []string{
	"trip_id", "user_id", "source_id", "dest_id", "selected_mode",
	"total_cost", "total_duration", "comfort_score", "created_at",
	"s_name", "s_city", "s_state", "d_name", "d_city", "d_state",
}

func TestTripCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO Trip").
		WithArgs(domain.ID(7), domain.ID(1), domain.ID(3), "Cab", 480.0, 55, 8).
		WillReturnResult(sqlmock.NewResult(101, 1))

	id, err := TripRepository{DB: db}.Create(context.Background(), models.TripRecord{
		UserID: 7, SourceID: 1, DestID: 3, SelectedMode: models.ModeCab,
		TotalCost: 480, TotalDuration: 55, ComfortScore: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(101), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripFindByUserNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery("WHERE t.user_id = \\?\\s+ORDER BY t.created_at DESC").
		WithArgs(domain.ID(7)).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(2, 7, 1, 3, "Cab", "480.00", 55, 8, newer, "Mumbai Airport", "Mumbai", "Maharashtra", "Mumbai Central", "Mumbai", "Maharashtra").
			AddRow(1, 7, 2, 4, "Auto", "180.00", 40, 4, older, "Delhi Airport", "Delhi", "Delhi", "Connaught Place", "Delhi", "Delhi"))

	trips, err := TripRepository{DB: db}.FindByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, domain.ID(2), trips[0].ID)
	assert.Equal(t, "Mumbai Airport", trips[0].SourceName)
	assert.Equal(t, "Connaught Place", trips[1].DestName)
	assert.Equal(t, 480.0, trips[0].TotalCost)
	assert.True(t, trips[0].CreatedAt.Equal(newer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripFindByIDScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("WHERE t.trip_id = \\? AND t.user_id = \\?").
		WithArgs(domain.ID(2), domain.ID(8)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	_, err = TripRepository{DB: db}.FindByID(context.Background(), 2, 8)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM Trip WHERE trip_id = \\? AND user_id = \\?").
		WithArgs(domain.ID(2), domain.ID(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM Trip").
		WithArgs(domain.ID(2), domain.ID(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripRepository{DB: db}
	ok, err := repo.Delete(context.Background(), 2, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 2, 8)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
