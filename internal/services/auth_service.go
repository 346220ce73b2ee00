package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
	"travelmitr/internal/repositories"
	"travelmitr/internal/utils"
)

const invalidCredentials = "invalid credentials"

// AuthService handles registration, login and the caller's profile.
type AuthService struct {
	Users     UserStore
	Tokens    Tokens
	RequestID string
	// Cost overrides bcrypt.DefaultCost; tests lower it.
	Cost int
}

func NewAuthService(db intdb.DBTX, tokens Tokens, requestID string) AuthService {
	return AuthService{
		Users:     repositories.UserRepository{DB: db},
		Tokens:    tokens,
		RequestID: requestID,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (s AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	var err error
	u := models.User{}
	if u.Name, err = required("name", in.Name); err != nil {
		return AuthResult{}, err
	}
	if u.Email, err = required("email", in.Email); err != nil {
		return AuthResult{}, err
	}
	u.Email = strings.ToLower(u.Email)
	if u.Phone, err = required("phone", in.Phone); err != nil {
		return AuthResult{}, err
	}
	if in.Password == "" {
		return AuthResult{}, domain.ValidationError{Field: "password", Msg: "password is required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	u.PasswordHash = string(hash)

	id, err := s.Users.Create(ctx, u)
	if err != nil {
		return AuthResult{}, err
	}
	u.ID = id

	token, err := s.Tokens.Issue(id)
	if err != nil {
		return AuthResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", id))
	return AuthResult{Token: token, User: u.ToPublic()}, nil
}

// Login never distinguishes an unknown email from a wrong password.
func (s AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return AuthResult{}, domain.ValidationError{Msg: "email and password are required"}
	}

	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return AuthResult{}, domain.UnauthorizedError{Msg: invalidCredentials}
		}
		return AuthResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return AuthResult{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return AuthResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return AuthResult{Token: token, User: u.ToPublic()}, nil
}

func (s AuthService) Profile(ctx context.Context, userID domain.ID) (models.PublicUser, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, err
	}
	return u.ToPublic(), nil
}

func (s AuthService) UpdateProfile(ctx context.Context, userID domain.ID, in ProfileInput) (models.PublicUser, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return models.PublicUser{}, err
	}
	phone, err := required("phone", in.Phone)
	if err != nil {
		return models.PublicUser{}, err
	}
	if _, err := s.Users.FindByID(ctx, userID); err != nil {
		return models.PublicUser{}, err
	}
	if err := s.Users.UpdateProfile(ctx, userID, name, phone); err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "update_profile", fmt.Sprintf("user_id=%d", userID))
	return s.Profile(ctx, userID)
}

func (s AuthService) cost() int {
	if s.Cost > 0 {
		return s.Cost
	}
	return bcrypt.DefaultCost
}
