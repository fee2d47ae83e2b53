package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
)

type preferencesRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferencesRepository returns the SQLite [PreferencesRepository].
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{db: db, logger: logger, now: time.Now}
}

func (p *preferencesRepository) Get(ctx context.Context, scope, key string) (string, error) {
	if scope == "" || key == "" {
		return "", ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := buildGetPreference(scope, key)
	if err != nil {
		return "", fmt.Errorf("build get preference query: %w", err)
	}

	var value string
	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPreferenceNotFound
		}
		log.Err(err).
			Str("func", "preferencesRepository.Get").
			Str("scope", scope).
			Str("key", key).
			Msg("failed to read preference")
		return "", fmt.Errorf("failed to read preference %q: %w", key, err)
	}

	return value, nil
}

func (p *preferencesRepository) Set(ctx context.Context, scope, key, value string) error {
	if scope == "" || key == "" {
		return ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := buildSetPreference(scope, key, value, p.now())
	if err != nil {
		return fmt.Errorf("build set preference query: %w", err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.Set").
			Str("scope", scope).
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}

	return nil
}

func (p *preferencesRepository) Delete(ctx context.Context, scope, key string) error {
	if scope == "" || key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeletePreference(scope, key)
	if err != nil {
		return fmt.Errorf("build delete preference query: %w", err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferencesRepository.Delete").
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}

	return nil
}
