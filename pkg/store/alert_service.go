package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/alert"
)

// AlertInput describes one alert to record.
type AlertInput struct {
	RepoID   string
	Type     string
	Level    alert.Level
	Message  string
	Metadata map[string]interface{}
}

// AlertService records threshold alerts. A repeat alert of the same type for
// the same repository inside the dedupe window is suppressed.
type AlertService struct {
	client       *ent.Client
	dedupeWindow time.Duration
}

// NewAlertService creates a new AlertService. dedupeWindow of zero disables
// suppression.
func NewAlertService(client *ent.Client, dedupeWindow time.Duration) *AlertService {
	return &AlertService{client: client, dedupeWindow: dedupeWindow}
}

// CreateAlert records an alert unless an identical-type alert for the repo
// exists inside the dedupe window, in which case ErrAlreadyExists is returned.
func (s *AlertService) CreateAlert(ctx context.Context, in AlertInput) (*ent.Alert, error) {
	if in.RepoID == "" {
		return nil, NewValidationError("repo_id", "required")
	}
	if in.Type == "" {
		return nil, NewValidationError("type", "required")
	}

	if s.dedupeWindow > 0 {
		cutoff := time.Now().Add(-s.dedupeWindow)
		exists, err := s.client.Alert.Query().
			Where(
				alert.RepoIDEQ(in.RepoID),
				alert.TypeEQ(in.Type),
				alert.SentAtGT(cutoff),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check alert dedupe: %w", err)
		}
		if exists {
			return nil, ErrAlreadyExists
		}
	}

	created, err := s.client.Alert.Create().
		SetID(uuid.New().String()).
		SetRepoID(in.RepoID).
		SetType(in.Type).
		SetLevel(in.Level).
		SetMessage(in.Message).
		SetMetadata(in.Metadata).
		SetSentAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: unknown repository %s", ErrInvalidInput, in.RepoID)
		}
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return created, nil
}

// ListAlerts returns alerts newest-first, optionally only unacknowledged ones.
func (s *AlertService) ListAlerts(ctx context.Context, onlyUnacknowledged bool, limit int) ([]*ent.Alert, error) {
	q := s.client.Alert.Query().
		Order(ent.Desc(alert.FieldSentAt))
	if onlyUnacknowledged {
		q = q.Where(alert.Acknowledged(false))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	alerts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Acknowledge marks an alert as seen.
func (s *AlertService) Acknowledge(ctx context.Context, alertID string) (*ent.Alert, error) {
	updated, err := s.client.Alert.UpdateOneID(alertID).
		SetAcknowledged(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	return updated, nil
}
