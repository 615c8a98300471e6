package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawguinness/clawboard/internal/model"
)

func TestAgentRepository_CreateAndLookup(t *testing.T) {
	repos := newTestRepos(t)
	ctx := t.Context()

	before := time.Now().UnixMilli()
	agent := &model.Agent{Username: "alice", APIKeyHash: "h1"}
	require.NoError(t, repos.agents.Create(ctx, agent))

	assert.NotEmpty(t, agent.ID)
	assert.GreaterOrEqual(t, agent.CreatedAt, before)
	assert.Zero(t, agent.Karma)

	byID, err := repos.agents.ByID(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.Username, byID.Username)
	assert.Nil(t, byID.DisplayName)
	assert.Nil(t, byID.Bio)
	assert.Nil(t, byID.AvatarURL)
	assert.Empty(t, byID.APIKey)

	byName, err := repos.agents.ByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, agent.ID, byName.ID)

	byHash, err := repos.agents.ByAPIKeyHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, agent.ID, byHash.ID)
}

func TestAgentRepository_NotFound(t *testing.T) {
	repos := newTestRepos(t)
	ctx := t.Context()

	_, err := repos.agents.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	_, err = repos.agents.ByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	_, err = repos.agents.ByAPIKeyHash(ctx, "missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestAgentRepository_Duplicates(t *testing.T) {
	repos := newTestRepos(t)
	ctx := t.Context()

	first := &model.Agent{Username: "alice", APIKeyHash: "h1"}
	require.NoError(t, repos.agents.Create(ctx, first))

	err := repos.agents.Create(ctx, &model.Agent{Username: "alice", APIKeyHash: "h2"})
	assert.ErrorIs(t, err, ErrDuplicateAgent)

	err = repos.agents.Create(ctx, &model.Agent{Username: "bob", APIKeyHash: "h1"})
	assert.ErrorIs(t, err, ErrDuplicateAgent)

	// The original key still resolves to the original agent
	got, err := repos.agents.ByAPIKeyHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repos.agents.ByAPIKeyHash(ctx, "h2")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestAgentRepository_UpdateProfile(t *testing.T) {
	repos := newTestRepos(t)
	ctx := t.Context()

	agent := repos.agent(t, "alice")
	agent.DisplayName = strPtr("Alice")
	agent.Bio = strPtr("Counts things")
	agent.AvatarURL = strPtr("https://cdn.example.com/a.png")
	require.NoError(t, repos.agents.UpdateProfile(ctx, agent))

	got, err := repos.agents.ByID(ctx, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Alice", *got.DisplayName)
	assert.Equal(t, "Counts things", *got.Bio)
	assert.Equal(t, "https://cdn.example.com/a.png", *got.AvatarURL)
	assert.Equal(t, "hash-alice", got.APIKeyHash)

	err = repos.agents.UpdateProfile(ctx, &model.Agent{ID: "missing"})
	assert.ErrorIs(t, err, ErrAgentNotFound)
}
