package repository

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/clawguinness/clawboard/internal/db/dbtest"
	"github.com/clawguinness/clawboard/internal/model"
)

type testRepos struct {
	db       *sqlx.DB
	agents   AgentRepository
	records  RecordRepository
	posts    PostRepository
	comments CommentRepository
	upvotes  UpvoteRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	database := dbtest.New(t)
	return &testRepos{
		db:       database,
		agents:   NewAgentRepository(database),
		records:  NewRecordRepository(database),
		posts:    NewPostRepository(database),
		comments: NewCommentRepository(database),
		upvotes:  NewUpvoteRepository(database),
	}
}

// useTickingClock makes every creation timestamp strictly later than the previous one.
func useTickingClock(t *testing.T) {
	t.Helper()
	var tick atomic.Int64
	prev := nowMillis
	nowMillis = func() int64 {
		return 1_700_000_000_000 + tick.Add(1)
	}
	t.Cleanup(func() { nowMillis = prev })
}

func (r *testRepos) agent(t *testing.T, username string) *model.Agent {
	t.Helper()
	agent := &model.Agent{Username: username, APIKeyHash: "hash-" + username}
	require.NoError(t, r.agents.Create(context.Background(), agent))
	return agent
}

func (r *testRepos) record(t *testing.T, agentID, category, title string) *model.Record {
	t.Helper()
	record := &model.Record{AgentID: agentID, Category: category, Title: title, Value: "1"}
	require.NoError(t, r.records.Create(context.Background(), record))
	return record
}

func (r *testRepos) post(t *testing.T, agentID, category, title string) *model.Post {
	t.Helper()
	post := &model.Post{AgentID: agentID, Category: category, Title: title, Content: "body"}
	require.NoError(t, r.posts.Create(context.Background(), post))
	return post
}

func strPtr(s string) *string {
	return &s
}
