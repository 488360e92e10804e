package postgres

import (
	"context"
	"errors"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AgentRepo struct{ db *pgxpool.Pool }

func NewAgentRepo(db *pgxpool.Pool) repository.AgentRepository { return &AgentRepo{db: db} }

func (r *AgentRepo) Create(ctx context.Context, a *models.Agent) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO agents (name, email, mobile, password_h)
		VALUES ($1,$2,$3,$4)
		RETURNING id::text, created_at`,
		a.Name, a.Email, a.Mobile, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt)
	return mapErr(err)
}

// List returns every agent ordered by registration sequence.
func (r *AgentRepo) List(ctx context.Context) ([]models.Agent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, name, email, mobile, created_at
		FROM agents
		ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Agent
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Mobile, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AgentRepo) GetByEmail(ctx context.Context, email string) (*models.Agent, error) {
	var a models.Agent
	err := r.db.QueryRow(ctx, `
		SELECT id::text, name, email, mobile, password_h, created_at
		FROM agents WHERE email=$1`, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.Mobile, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
