package contract

import "context"

// ISettingsRepository stores the persisted seed flag guarding idempotent
// initialization. Once MarkSeeded succeeds, re-running the seeder is a
// no-op regardless of restarts.
type ISettingsRepository interface {
	WasSeeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}
