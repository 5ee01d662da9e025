// Package store provides the persistence services over the Ent client. Each
// service owns one entity family; all host data flows through UpsertRepository
// so a repo row is created on first sighting and refreshed on rescans.
package store

import (
	"context"
	"fmt"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/pkg/githost"
)

// RepositoryService manages repository rows.
type RepositoryService struct {
	client *ent.Client
}

// NewRepositoryService creates a new RepositoryService
func NewRepositoryService(client *ent.Client) *RepositoryService {
	return &RepositoryService{client: client}
}

// UpsertRepository creates the repository on first sighting or refreshes its
// host metadata. Rows are never destroyed by rescans.
func (s *RepositoryService) UpsertRepository(ctx context.Context, repo githost.Repository) (*ent.Repository, error) {
	if repo.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if repo.FullName == "" {
		return nil, NewValidationError("full_name", "required")
	}

	existing, err := s.client.Repository.Query().
		Where(repository.IDEQ(repo.ID)).
		Only(ctx)

	switch {
	case err == nil:
		upd := existing.Update().
			SetOwner(repo.Owner).
			SetName(repo.Name).
			SetFullName(repo.FullName).
			SetDescription(repo.Description).
			SetStars(repo.Stars).
			SetForks(repo.Forks).
			SetOpenIssues(repo.OpenIssues).
			SetLanguage(repo.Language).
			SetTopics(repo.Topics).
			SetUpdatedAt(repo.UpdatedAt).
			SetIsArchived(repo.IsArchived).
			SetIsFork(repo.IsFork).
			SetHTMLURL(repo.HTMLURL).
			SetDefaultBranch(repo.DefaultBranch)
		if repo.PushedAt != nil {
			upd.SetPushedAt(*repo.PushedAt)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update repository: %w", err)
		}
		return updated, nil

	case ent.IsNotFound(err):
		create := s.client.Repository.Create().
			SetID(repo.ID).
			SetOwner(repo.Owner).
			SetName(repo.Name).
			SetFullName(repo.FullName).
			SetDescription(repo.Description).
			SetStars(repo.Stars).
			SetForks(repo.Forks).
			SetOpenIssues(repo.OpenIssues).
			SetLanguage(repo.Language).
			SetTopics(repo.Topics).
			SetCreatedAt(repo.CreatedAt).
			SetUpdatedAt(repo.UpdatedAt).
			SetIsArchived(repo.IsArchived).
			SetIsFork(repo.IsFork).
			SetHTMLURL(repo.HTMLURL).
			SetDefaultBranch(repo.DefaultBranch)
		if repo.PushedAt != nil {
			create.SetPushedAt(*repo.PushedAt)
		}
		created, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create repository: %w", err)
		}
		return created, nil

	default:
		return nil, fmt.Errorf("failed to query repository: %w", err)
	}
}

// GetRepository retrieves a repository by its host identifier.
func (s *RepositoryService) GetRepository(ctx context.Context, repoID string) (*ent.Repository, error) {
	repo, err := s.client.Repository.Query().
		Where(repository.IDEQ(repoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	return repo, nil
}

// GetRepositoryByFullName retrieves a repository by its owner/name key.
func (s *RepositoryService) GetRepositoryByFullName(ctx context.Context, fullName string) (*ent.Repository, error) {
	repo, err := s.client.Repository.Query().
		Where(repository.FullNameEQ(fullName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository by full name: %w", err)
	}
	return repo, nil
}

// Count returns the total number of tracked repositories.
func (s *RepositoryService) Count(ctx context.Context) (int, error) {
	n, err := s.client.Repository.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count repositories: %w", err)
	}
	return n, nil
}

// ListRepositories returns repositories ordered by stars descending.
func (s *RepositoryService) ListRepositories(ctx context.Context, limit int) ([]*ent.Repository, error) {
	q := s.client.Repository.Query().
		Order(ent.Desc(repository.FieldStars))
	if limit > 0 {
		q = q.Limit(limit)
	}
	repos, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	return repos, nil
}
