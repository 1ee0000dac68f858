package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderplan/itinerary/internal/domain"
)

// Days have no repo of their own: they are created, replaced and deleted only
// through their trip. These helpers run inside TripRepo calls.

const dayColumns = `id, trip_id, day_number, date, activities, notes`

// querier is the read/write subset shared by db and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertDay(ctx context.Context, q querier, d domain.Day) (domain.Day, error) {
	const stmt = `
		INSERT INTO days (trip_id, day_number, date, activities, notes)
		VALUES (@trip_id, @day_number, @date, @activities, @notes)
		RETURNING ` + dayColumns

	row := q.QueryRow(ctx, stmt, pgx.NamedArgs{
		"trip_id":    d.TripID,
		"day_number": d.Number,
		"date":       d.Date,
		"activities": activitiesOrEmpty(d.Activities),
		"notes":      d.Notes,
	})
	return scanDay(row)
}

func listDays(ctx context.Context, q querier, tripID uuid.UUID) ([]domain.Day, error) {
	const stmt = `SELECT ` + dayColumns + ` FROM days WHERE trip_id = @trip_id ORDER BY day_number`

	rows, err := q.Query(ctx, stmt, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("list days: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list days: rows: %w", err)
	}
	return days, nil
}

func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)
	if err := s.Scan(&id, &tripID, &d.Number, &date, &d.Activities, &d.Notes); err != nil {
		return domain.Day{}, err
	}
	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	d.Meals = map[domain.MealSlot]domain.Meal{}
	if d.Activities == nil {
		d.Activities = []domain.Activity{}
	}
	return d, nil
}

// activitiesOrEmpty keeps a nil slice from being stored as JSON null.
func activitiesOrEmpty(a []domain.Activity) []domain.Activity {
	if a == nil {
		return []domain.Activity{}
	}
	return a
}
