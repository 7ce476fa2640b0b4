package technician

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/pkg/psqlbuilder"
	"github.com/garage-ms/availability-service/pkg/txmanager"
)

// DBExecutor is satisfied by *sql.DB and *sql.Tx
type DBExecutor = txmanager.Executor

// Repository provides access to technicians and their schedule data:
// weekly working-hours rows, break rows and per-date exceptions.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a technician repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveForDate fetches all active technicians with their weekly
// template, breaks, and any exception for the given date. This is the
// roster snapshot the availability engine computes from.
func (r *Repository) ListActiveForDate(ctx context.Context, date time.Time) ([]*domain.Technician, error) {
	technicians, err := r.listActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(technicians) == 0 {
		return technicians, nil
	}

	ids := make([]int64, len(technicians))
	byID := make(map[int64]*domain.Technician, len(technicians))
	for i, tech := range technicians {
		ids[i] = tech.ID
		byID[tech.ID] = tech
	}

	if err := r.loadWorkingHours(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadBreaks(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadExceptions(ctx, ids, date, byID); err != nil {
		return nil, err
	}

	return technicians, nil
}

// GetForDate fetches one technician with schedule data for the given date.
// Used by booking creation to re-check the requested slot.
func (r *Repository) GetForDate(ctx context.Context, id int64, date time.Time) (*domain.Technician, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "is_active").
		From("technicians").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	var tech domain.Technician
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tech.ID, &tech.Name, &tech.Email, &tech.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - scan technician: %v", ErrScanRow, err)
	}

	ids := []int64{tech.ID}
	byID := map[int64]*domain.Technician{tech.ID: &tech}

	if err := r.loadWorkingHours(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadBreaks(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadExceptions(ctx, ids, date, byID); err != nil {
		return nil, err
	}

	return &tech, nil
}

func (r *Repository) listActive(ctx context.Context) ([]*domain.Technician, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "is_active").
		From("technicians").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	technicians := make([]*domain.Technician, 0)
	for rows.Next() {
		var tech domain.Technician
		if err := rows.Scan(&tech.ID, &tech.Name, &tech.Email, &tech.IsActive); err != nil {
			return nil, fmt.Errorf("%w: listActive - scan row: %v", ErrScanRow, err)
		}
		technicians = append(technicians, &tech)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listActive - rows error: %v", ErrScanRow, err)
	}

	return technicians, nil
}

func (r *Repository) loadWorkingHours(ctx context.Context, ids []int64, byID map[int64]*domain.Technician) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("technician_id", "weekday", "start_minutes", "end_minutes").
		From("technician_hours").
		Where(squirrel.Eq{"technician_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var techID int64
		var weekday, startMinutes, endMinutes int
		if err := rows.Scan(&techID, &weekday, &startMinutes, &endMinutes); err != nil {
			return fmt.Errorf("%w: loadWorkingHours - scan row: %v", ErrScanRow, err)
		}

		interval, err := domain.NewInterval(domain.TimeOfDay(startMinutes), domain.TimeOfDay(endMinutes))
		if err != nil {
			// Malformed row never aborts the roster; the technician just
			// has no template entry for that weekday.
			continue
		}

		tech := byID[techID]
		if tech.Template.WorkingHours == nil {
			tech.Template.WorkingHours = make(map[time.Weekday]domain.Interval)
		}
		tech.Template.WorkingHours[time.Weekday(weekday)] = interval
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadWorkingHours - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadBreaks(ctx context.Context, ids []int64, byID map[int64]*domain.Technician) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("technician_id", "start_minutes", "end_minutes").
		From("technician_breaks").
		Where(squirrel.Eq{"technician_id": ids}).
		OrderBy("start_minutes ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var techID int64
		var startMinutes, endMinutes int
		if err := rows.Scan(&techID, &startMinutes, &endMinutes); err != nil {
			return fmt.Errorf("%w: loadBreaks - scan row: %v", ErrScanRow, err)
		}

		interval, err := domain.NewInterval(domain.TimeOfDay(startMinutes), domain.TimeOfDay(endMinutes))
		if err != nil {
			continue
		}

		tech := byID[techID]
		tech.Template.Breaks = append(tech.Template.Breaks, interval)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBreaks - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadExceptions(ctx context.Context, ids []int64, date time.Time, byID map[int64]*domain.Technician) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select(
		"technician_id", "exception_date", "exception_type",
		"override_start_minutes", "override_end_minutes",
	).
		From("technician_exceptions").
		Where(squirrel.Eq{"technician_id": ids}).
		Where(squirrel.Eq{"exception_date": dateOnly}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var techID int64
		var exc domain.DateException
		var overrideStart, overrideEnd sql.NullInt64
		if err := rows.Scan(&techID, &exc.Date, &exc.Type, &overrideStart, &overrideEnd); err != nil {
			return fmt.Errorf("%w: loadExceptions - scan row: %v", ErrScanRow, err)
		}

		if overrideStart.Valid && overrideEnd.Valid {
			interval, err := domain.NewInterval(
				domain.TimeOfDay(overrideStart.Int64),
				domain.TimeOfDay(overrideEnd.Int64),
			)
			if err == nil {
				exc.OverrideInterval = &interval
			}
		}

		tech := byID[techID]
		tech.Exceptions = append(tech.Exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadExceptions - rows error: %v", ErrScanRow, err)
	}
	return nil
}
