package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DistributionRepo struct{ db *pgxpool.Pool }

func NewDistributionRepo(db *pgxpool.Pool) repository.DistributionRepository {
	return &DistributionRepo{db: db}
}

// InsertBatches writes all batches in one transaction; seq preserves the
// order they were passed in.
func (r *DistributionRepo) InsertBatches(ctx context.Context, batches []models.DistributionBatch) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for i := range batches {
			b := &batches[i]
			tasks, err := json.Marshal(tasksOrEmpty(b.Tasks))
			if err != nil {
				return fmt.Errorf("encode tasks for agent %s: %w", b.AgentID, err)
			}
			err = tx.QueryRow(ctx, `
				INSERT INTO distributions (agent_id, tasks, upload_date)
				VALUES ($1::uuid,$2,$3)
				RETURNING id::text`,
				b.AgentID, tasks, b.UploadDate).Scan(&b.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DistributionRepo) List(ctx context.Context) ([]models.DistributionBatch, error) {
	return r.query(ctx, `
		SELECT id::text, agent_id::text, tasks, upload_date
		FROM distributions
		ORDER BY upload_date ASC, seq ASC`)
}

func (r *DistributionRepo) ListByAgent(ctx context.Context, agentID string) ([]models.DistributionBatch, error) {
	return r.query(ctx, `
		SELECT id::text, agent_id::text, tasks, upload_date
		FROM distributions
		WHERE agent_id::text = $1
		ORDER BY upload_date ASC, seq ASC`, agentID)
}

func (r *DistributionRepo) query(ctx context.Context, sql string, args ...any) ([]models.DistributionBatch, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DistributionBatch
	for rows.Next() {
		var (
			b   models.DistributionBatch
			raw []byte
		)
		if err := rows.Scan(&b.ID, &b.AgentID, &raw, &b.UploadDate); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &b.Tasks); err != nil {
			return nil, fmt.Errorf("decode tasks of batch %s: %w", b.ID, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func tasksOrEmpty(t []models.TaskRecord) []models.TaskRecord {
	if t == nil {
		return []models.TaskRecord{}
	}
	return t
}
