package service

import "github.com/Hema-A-05/MERN-flasklite/internal/models"

// Assignment is one agent's contiguous share of an upload.
type Assignment struct {
	AgentID string
	Tasks   []models.TaskRecord
}

// Distribute splits records into len(agents) contiguous chunks in file order.
// With n records and m agents every agent gets n/m records and the first
// n%m agents get one more. The result has one entry per agent, in the
// order agents were given, including empty ones.
func Distribute(records []models.TaskRecord, agents []models.Agent) ([]Assignment, error) {
	m := len(agents)
	if m == 0 {
		return nil, ErrNoAgents
	}
	base, extra := len(records)/m, len(records)%m

	out := make([]Assignment, m)
	start := 0
	for i, a := range agents {
		size := base
		if i < extra {
			size++
		}
		chunk := make([]models.TaskRecord, size)
		copy(chunk, records[start:start+size])
		out[i] = Assignment{AgentID: a.ID, Tasks: chunk}
		start += size
	}
	return out, nil
}
