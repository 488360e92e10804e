package postgres

import (
	"context"
	"errors"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) repository.UserRepository { return &UserRepo{db: db} }

// Create user (stores bcrypt hash in password_h)
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	u := models.User{PasswordHash: passwordHash}
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_h)
		VALUES ($1,$2)
		RETURNING id::text, email, created_at`,
		email, passwordHash).
		Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT id::text, email, password_h, created_at
		FROM users WHERE email=$1`, email)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT id::text, email, password_h, created_at
		FROM users WHERE id::text=$1`, id)
}

func (r *UserRepo) getOne(ctx context.Context, sql string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// mapErr turns unique violations into repository.ErrDuplicate.
func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
