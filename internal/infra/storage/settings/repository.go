package settings

import (
	"context"
	"fmt"

	"github.com/garage-ms/availability-service/pkg/psqlbuilder"
	"github.com/garage-ms/availability-service/pkg/txmanager"
)

// DBExecutor is satisfied by *sql.DB and *sql.Tx
type DBExecutor = txmanager.Executor

// Repository provides access to the workshop_settings key/value table.
// Values are stored as raw strings; parsing and per-field defaulting happen
// in domain.ResolveWorkshopDefaults.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a settings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll fetches every stored setting as a raw key/value map
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From("workshop_settings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return values, nil
}

// Upsert writes one setting, inserting or overwriting its value
func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("workshop_settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
