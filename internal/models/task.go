package models

import "time"

// TaskRecord is one row of an uploaded contact list. JSON names match the
// upload's column headers.
type TaskRecord struct {
	FirstName string `json:"FirstName"`
	Phone     string `json:"Phone"`
	Notes     string `json:"Notes"`
}

// DistributionBatch is the slice of one upload assigned to one agent.
// Batches are written once and never updated.
type DistributionBatch struct {
	ID         string       `json:"-"`
	AgentID    string       `json:"agent_id"`
	Tasks      []TaskRecord `json:"tasks"`
	UploadDate time.Time    `json:"upload_date"`
}
