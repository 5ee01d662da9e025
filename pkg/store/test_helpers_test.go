package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/database"
	"github.com/reporadar/reporadar/pkg/githost"
)

// seedRepo inserts a repository row for services that hang off the repo FK.
func seedRepo(t *testing.T, client *database.Client, id, fullName string) githost.Repository {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	pushed := now.Add(-24 * time.Hour)
	repo := githost.Repository{
		ID:            id,
		Owner:         "acme",
		Name:          fullName,
		FullName:      fullName,
		Description:   "test repo",
		Stars:         120,
		Forks:         14,
		OpenIssues:    3,
		Language:      "Go",
		Topics:        []string{"ai", "llm"},
		CreatedAt:     now.AddDate(0, -6, 0),
		UpdatedAt:     now,
		PushedAt:      &pushed,
		HTMLURL:       "https://example.com/" + fullName,
		DefaultBranch: "main",
	}

	_, err := NewRepositoryService(client.Client).UpsertRepository(context.Background(), repo)
	require.NoError(t, err)
	return repo
}
