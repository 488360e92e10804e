package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
)

type AgentService struct {
	agents repository.AgentRepository
}

func NewAgentService(agents repository.AgentRepository) *AgentService {
	return &AgentService{agents: agents}
}

// AddAgent registers an agent and returns its id. Only the bcrypt hash of
// the password is stored.
func (s *AgentService) AddAgent(ctx context.Context, name, email, mobile, password string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	mobile = strings.TrimSpace(mobile)
	if name == "" || email == "" || mobile == "" || password == "" {
		return "", ErrMissingField
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}
	a := &models.Agent{Name: name, Email: email, Mobile: mobile, PasswordHash: hash}
	if err := s.agents.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrAgentExists
		}
		return "", err
	}
	return a.ID, nil
}

// ListAgents returns agents in registration order without password hashes.
func (s *AgentService) ListAgents(ctx context.Context) ([]models.Agent, error) {
	agents, err := s.agents.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		agents[i].PasswordHash = ""
	}
	return agents, nil
}
