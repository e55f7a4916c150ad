package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/setting"
)

// Service stores back-office configuration as key/value pairs.
type Service struct {
	db *ent.Client
}

// NewService creates a new settings service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// All returns every setting as a map.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.Setting.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Get returns one setting value; "" when unset.
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	row, err := s.db.Setting.Query().Where(setting.KeyEQ(key)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return row.Value, nil
}

// Set upserts a setting value keyed by name.
func (s *Service) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Setting.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create setting %q: %w", key, err)
	}

	_, err = s.db.Setting.Update().
		Where(setting.KeyEQ(key)).
		SetValue(value).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update setting %q: %w", key, err)
	}
	return nil
}
