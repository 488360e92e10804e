package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hema-A-05/MERN-flasklite/internal/ingest"
	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"
)

type DistributionService struct {
	agents  repository.AgentRepository
	batches repository.DistributionRepository
	log     zerolog.Logger
	now     func() time.Time
}

func NewDistributionService(agents repository.AgentRepository, batches repository.DistributionRepository, log zerolog.Logger) *DistributionService {
	return &DistributionService{agents: agents, batches: batches, log: log, now: time.Now}
}

// Upload parses the file, splits its rows across all current agents and
// stores one batch per agent. Nothing is stored unless every step succeeds.
func (s *DistributionService) Upload(ctx context.Context, filename string, r io.Reader) (map[string][]models.TaskRecord, error) {
	records, err := ingest.ParseFile(filename, r)
	if err != nil {
		return nil, err
	}

	agents, err := s.agents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	assignments, err := Distribute(records, agents)
	if err != nil {
		return nil, err
	}

	uploaded := s.now().UTC()
	batches := make([]models.DistributionBatch, len(assignments))
	out := make(map[string][]models.TaskRecord, len(assignments))
	for i, a := range assignments {
		batches[i] = models.DistributionBatch{AgentID: a.AgentID, Tasks: a.Tasks, UploadDate: uploaded}
		out[a.AgentID] = a.Tasks
	}
	if err := s.batches.InsertBatches(ctx, batches); err != nil {
		return nil, fmt.Errorf("store batches: %w", err)
	}

	s.log.Info().
		Str("file", filename).
		Int("rows", len(records)).
		Int("agents", len(agents)).
		Msg("upload distributed")
	return out, nil
}

// ListDistributions returns every stored batch, or only one agent's when
// agentID is set.
func (s *DistributionService) ListDistributions(ctx context.Context, agentID string) ([]models.DistributionBatch, error) {
	if agentID != "" {
		return s.batches.ListByAgent(ctx, agentID)
	}
	return s.batches.List(ctx)
}
