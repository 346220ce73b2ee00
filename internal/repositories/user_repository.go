package repositories

import (
	"context"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

type UserRepository struct {
	DB intdb.DBTX
}

// Create inserts a user; a taken email surfaces as ConflictError.
func (r UserRepository) Create(ctx context.Context, u models.User) (domain.ID, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO User (name, email, password, phone) VALUES (?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.Phone)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "user", Msg: "user already exists with this email", Err: err}
		}
		return 0, storageErr("create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("create user", err)
	}
	return domain.ID(id), nil
}

func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, name, email, password, phone, created_at FROM User WHERE email = ?`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	if err != nil {
		return models.User{}, notFoundOr("user", "get user by email", err)
	}
	return u, nil
}

func (r UserRepository) FindByID(ctx context.Context, id domain.ID) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, name, email, phone, created_at FROM User WHERE user_id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt)
	if err != nil {
		return models.User{}, notFoundOr("user", "get user", err)
	}
	return u, nil
}

// UpdateProfile changes name and phone; email and password are not editable here.
// MySQL reports zero affected rows for a no-op update, so callers check
// existence separately.
func (r UserRepository) UpdateProfile(ctx context.Context, id domain.ID, name, phone string) error {
	if _, err := r.DB.ExecContext(ctx, `UPDATE User SET name = ?, phone = ? WHERE user_id = ?`, name, phone, id); err != nil {
		return storageErr("update user", err)
	}
	return nil
}
