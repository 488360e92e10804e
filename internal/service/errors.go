package service

import (
	"errors"

	"github.com/Hema-A-05/MERN-flasklite/internal/ingest"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("token is invalid")

	ErrMissingField = errors.New("missing required fields")
	ErrAgentExists  = errors.New("agent with this email already exists")

	ErrUnsupportedFileType = ingest.ErrUnsupportedFileType
	ErrMissingColumns      = ingest.ErrMissingColumns
	ErrNoAgents            = errors.New("no agents available to distribute tasks")
)
