// Package repo contains all database access for the itinerary service.
// Each aggregate has its own file with an interface and a Postgres
// implementation. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderplan/itinerary/internal/domain"
)

// db is the subset satisfied by both *pgxpool.Pool and pgx.Tx. Integration
// tests pass a transaction that is rolled back after each test; Begin on a
// pgx.Tx opens a savepoint, so multi-statement writes still work there.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trips and their days.
// The service layer depends on this interface so it can be unit-tested with
// a hand-written mock.
type TripRepo interface {
	// Create inserts the trip and all of trip.Days in one transaction and
	// returns the persisted aggregate with generated ids and timestamps.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID returns the trip with its days (ordered by day number) and the
	// meals attached to each day. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of trips, newest start date first, without
	// their days, plus the total number of trips.
	ListPaged(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error)

	// ReplacePlans stores a new style and overwrites the activities and notes
	// of every day, matched by day number. Meals are left untouched.
	ReplacePlans(ctx context.Context, tripID uuid.UUID, style domain.VacationStyle, days []domain.Day) error

	// Touch bumps updated_at. Returns domain.ErrNotFound if absent.
	Touch(ctx context.Context, id uuid.UUID) error

	// Delete removes a trip; its days and meals go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, start_date, end_date,
	style_chillaxed, style_adventurous, style_busy, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const q = `
		INSERT INTO trips (destination, start_date, end_date, style_chillaxed, style_adventurous, style_busy)
		VALUES (@destination, @start_date, @end_date, @chillaxed, @adventurous, @busy)
		RETURNING ` + tripColumns

	row := tx.QueryRow(ctx, q, pgx.NamedArgs{
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"chillaxed":   trip.Style.Chillaxed,
		"adventurous": trip.Style.Adventurous,
		"busy":        trip.Style.Busy,
	})
	created, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	created.Days = make([]domain.Day, 0, len(trip.Days))
	for _, d := range trip.Days {
		d.TripID = created.ID
		saved, err := insertDay(ctx, tx, d)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: day %d: %w", d.Number, err)
		}
		created.Days = append(created.Days, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: commit: %w", err)
	}
	return created, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	trip, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	days, err := listDays(ctx, r.db, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	meals, err := listMealsByTrip(ctx, r.db, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	byDay := make(map[uuid.UUID]int, len(days))
	for i, d := range days {
		byDay[d.ID] = i
	}
	for _, m := range meals {
		if i, ok := byDay[m.meal.DayID]; ok {
			days[i].Meals[m.slot] = m.meal
		}
	}

	trip.Days = days
	return trip, nil
}

func (r *pgTripRepo) ListPaged(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + tripColumns + `
		FROM trips
		ORDER BY start_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": page.Limit, "offset": page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}
	return trips, total, nil
}

func (r *pgTripRepo) ReplacePlans(ctx context.Context, tripID uuid.UUID, style domain.VacationStyle, days []domain.Day) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.ReplacePlans: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const updTrip = `
		UPDATE trips
		SET style_chillaxed   = @chillaxed,
		    style_adventurous = @adventurous,
		    style_busy        = @busy,
		    updated_at        = now()
		WHERE id = @id`

	tag, err := tx.Exec(ctx, updTrip, pgx.NamedArgs{
		"id":          tripID,
		"chillaxed":   style.Chillaxed,
		"adventurous": style.Adventurous,
		"busy":        style.Busy,
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.ReplacePlans: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.ReplacePlans: %w", domain.ErrNotFound)
	}

	const updDay = `
		UPDATE days
		SET activities = @activities,
		    notes      = @notes
		WHERE trip_id = @trip_id AND day_number = @day_number`

	for _, d := range days {
		_, err := tx.Exec(ctx, updDay, pgx.NamedArgs{
			"trip_id":    tripID,
			"day_number": d.Number,
			"activities": activitiesOrEmpty(d.Activities),
			"notes":      d.Notes,
		})
		if err != nil {
			return fmt.Errorf("repo.TripRepo.ReplacePlans: day %d: %w", d.Number, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TripRepo.ReplacePlans: commit: %w", err)
	}
	return nil
}

func (r *pgTripRepo) Touch(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE trips SET updated_at = now() WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Touch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Touch: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t          domain.Trip
		id         pgtype.UUID
		start, end pgtype.Date
	)
	err := s.Scan(&id, &t.Destination, &start, &end,
		&t.Style.Chillaxed, &t.Style.Adventurous, &t.Style.Busy,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = start.Time
	t.EndDate = end.Time
	return t, nil
}
