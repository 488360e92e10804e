package database

import (
	"context"
	"fmt"

	"github.com/Hema-A-05/MERN-flasklite/internal/config"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository/memory"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository/postgres"
)

// Repos is the set of repositories for the configured store driver.
type Repos struct {
	Users         repository.UserRepository
	Agents        repository.AgentRepository
	Distributions repository.DistributionRepository

	Ping  func(context.Context) error
	Close func()
}

func OpenRepos(ctx context.Context, cfg config.Config) (*Repos, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		s := memory.New()
		return &Repos{
			Users:         s.Users(),
			Agents:        s.Agents(),
			Distributions: s.Distributions(),
			Close:         func() {},
		}, nil
	case config.StoreDriverPostgres, "":
		pool, err := Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Repos{
			Users:         postgres.NewUserRepo(pool),
			Agents:        postgres.NewAgentRepo(pool),
			Distributions: postgres.NewDistributionRepo(pool),
			Ping:          pool.Ping,
			Close:         pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
