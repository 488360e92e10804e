package repository

import (
	"context"
	"errors"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
)

// ErrDuplicate is returned by Create when the unique email is already taken.
var ErrDuplicate = errors.New("duplicate record")

// Lookups return (nil, nil) when nothing matches.

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type AgentRepository interface {
	Create(ctx context.Context, a *models.Agent) error
	// List returns agents in registration order.
	List(ctx context.Context) ([]models.Agent, error)
	GetByEmail(ctx context.Context, email string) (*models.Agent, error)
}

type DistributionRepository interface {
	// InsertBatches stores all batches of one upload, or none of them.
	InsertBatches(ctx context.Context, batches []models.DistributionBatch) error
	List(ctx context.Context) ([]models.DistributionBatch, error)
	ListByAgent(ctx context.Context, agentID string) ([]models.DistributionBatch, error)
}
