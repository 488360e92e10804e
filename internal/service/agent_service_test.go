package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hema-A-05/MERN-flasklite/internal/repository/memory"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
)

func TestAddAgent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := service.NewAgentService(store.Agents())

	id, err := svc.AddAgent(ctx, " Ann ", "ann@example.com", "+15550001", "pw-ann")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := store.Agents().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "Ann", stored.Name)
	require.NotEqual(t, "pw-ann", stored.PasswordHash)
	require.True(t, utils.CheckPassword(stored.PasswordHash, "pw-ann"))
}

func TestAddAgentMissingField(t *testing.T) {
	svc := service.NewAgentService(memory.New().Agents())
	cases := []struct{ name, email, mobile, password string }{
		{"", "a@x", "1", "p"},
		{"A", "", "1", "p"},
		{"A", "a@x", "  ", "p"},
		{"A", "a@x", "1", ""},
	}
	for _, c := range cases {
		_, err := svc.AddAgent(context.Background(), c.name, c.email, c.mobile, c.password)
		require.ErrorIs(t, err, service.ErrMissingField)
	}
}

func TestAddAgentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAgentService(memory.New().Agents())
	_, err := svc.AddAgent(ctx, "A", "a@x", "1", "p")
	require.NoError(t, err)
	_, err = svc.AddAgent(ctx, "B", "a@x", "2", "q")
	require.ErrorIs(t, err, service.ErrAgentExists)
}

func TestListAgentsRegistrationOrderWithoutHash(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAgentService(memory.New().Agents())
	for _, e := range []string{"c@x", "a@x", "b@x"} {
		_, err := svc.AddAgent(ctx, e, e, "1", "p")
		require.NoError(t, err)
	}
	agents, err := svc.ListAgents(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 3)
	require.Equal(t, "c@x", agents[0].Email)
	require.Equal(t, "a@x", agents[1].Email)
	require.Equal(t, "b@x", agents[2].Email)
	for _, a := range agents {
		require.Empty(t, a.PasswordHash)
	}
}
