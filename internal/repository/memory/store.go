// Package memory is a process-local implementation of the repository
// interfaces, used by STORE_DRIVER=memory and by tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"

	"github.com/google/uuid"
)

// Store holds users, agents and batches behind one mutex. Slices keep
// insertion order, which is the registration order for agents.
type Store struct {
	mu      sync.RWMutex
	users   []models.User
	agents  []models.Agent
	batches []models.DistributionBatch
	now     func() time.Time
}

func New() *Store { return &Store{now: time.Now} }

func (s *Store) Users() repository.UserRepository                 { return userRepo{s} }
func (s *Store) Agents() repository.AgentRepository               { return agentRepo{s} }
func (s *Store) Distributions() repository.DistributionRepository { return distRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, email, passwordHash string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return nil, repository.ErrDuplicate
		}
	}
	u := models.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash, CreatedAt: r.s.now()}
	r.s.users = append(r.s.users, u)
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email }), nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id }), nil
}

func (r userRepo) find(match func(models.User) bool) *models.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			u := u
			return &u
		}
	}
	return nil
}

type agentRepo struct{ s *Store }

func (r agentRepo) Create(_ context.Context, a *models.Agent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.agents {
		if x.Email == a.Email {
			return repository.ErrDuplicate
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = r.s.now()
	r.s.agents = append(r.s.agents, *a)
	return nil
}

func (r agentRepo) List(_ context.Context) ([]models.Agent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Agent, len(r.s.agents))
	copy(out, r.s.agents)
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

func (r agentRepo) GetByEmail(_ context.Context, email string) (*models.Agent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.agents {
		if a.Email == email {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

type distRepo struct{ s *Store }

// InsertBatches appends every batch under a single lock, so readers see
// either none or all of an upload.
func (r distRepo) InsertBatches(_ context.Context, batches []models.DistributionBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range batches {
		b := batches[i]
		b.ID = uuid.NewString()
		b.Tasks = cloneTasks(b.Tasks)
		batches[i].ID = b.ID
		r.s.batches = append(r.s.batches, b)
	}
	return nil
}

func (r distRepo) List(_ context.Context) ([]models.DistributionBatch, error) {
	return r.filter(func(models.DistributionBatch) bool { return true }), nil
}

func (r distRepo) ListByAgent(_ context.Context, agentID string) ([]models.DistributionBatch, error) {
	return r.filter(func(b models.DistributionBatch) bool { return b.AgentID == agentID }), nil
}

func (r distRepo) filter(keep func(models.DistributionBatch) bool) []models.DistributionBatch {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.DistributionBatch
	for _, b := range r.s.batches {
		if keep(b) {
			b.Tasks = cloneTasks(b.Tasks)
			out = append(out, b)
		}
	}
	return out
}

func cloneTasks(t []models.TaskRecord) []models.TaskRecord {
	out := make([]models.TaskRecord, len(t))
	copy(out, t)
	return out
}
