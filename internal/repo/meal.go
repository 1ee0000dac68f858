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

// MealRepo defines the persistence operations for meals attached to days.
type MealRepo interface {
	// Upsert stores meal in the slot of meal.DayID named by meal.Type,
	// replacing any meal already there. Returns domain.ErrNotFound if the day
	// does not exist.
	Upsert(ctx context.Context, meal domain.Meal) (domain.Meal, error)

	// DeleteByBookingID removes every meal that originated from bookingID and
	// returns the ids of the trips that lost a meal.
	DeleteByBookingID(ctx context.Context, bookingID string) ([]uuid.UUID, error)
}

type pgMealRepo struct {
	db db
}

// NewMealRepo constructs a MealRepo backed by the provided db connection.
func NewMealRepo(db db) MealRepo {
	return &pgMealRepo{db: db}
}

// foreignKeyViolation is the Postgres SQLSTATE for a missing referenced row.
const foreignKeyViolation = "23503"

const mealColumns = `id, day_id, slot, meal_type, restaurant, cuisine, location,
	price_bucket, meal_time, meal_date, provider, notes, booking_id`

func (r *pgMealRepo) Upsert(ctx context.Context, meal domain.Meal) (domain.Meal, error) {
	const q = `
		INSERT INTO meals (day_id, slot, meal_type, restaurant, cuisine, location,
		                   price_bucket, meal_time, meal_date, provider, notes, booking_id)
		VALUES (@day_id, @slot, @meal_type, @restaurant, @cuisine, @location,
		        @price_bucket, @meal_time, @meal_date, @provider, @notes, @booking_id)
		ON CONFLICT (day_id, slot) DO UPDATE
		SET meal_type    = EXCLUDED.meal_type,
		    restaurant   = EXCLUDED.restaurant,
		    cuisine      = EXCLUDED.cuisine,
		    location     = EXCLUDED.location,
		    price_bucket = EXCLUDED.price_bucket,
		    meal_time    = EXCLUDED.meal_time,
		    meal_date    = EXCLUDED.meal_date,
		    provider     = EXCLUDED.provider,
		    notes        = EXCLUDED.notes,
		    booking_id   = EXCLUDED.booking_id
		RETURNING ` + mealColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"day_id":       meal.DayID,
		"slot":         string(meal.Type),
		"meal_type":    string(meal.Type),
		"restaurant":   meal.Restaurant,
		"cuisine":      nilIfEmpty(meal.Cuisine),
		"location":     meal.Location,
		"price_bucket": nilIfEmpty(string(meal.Price)),
		"meal_time":    meal.Time,
		"meal_date":    pgtype.Date{Time: meal.Date, Valid: !meal.Date.IsZero()},
		"provider":     meal.Provider,
		"notes":        meal.Notes,
		"booking_id":   nilIfEmpty(meal.BookingID),
	})
	saved, err := scanMeal(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.Meal{}, fmt.Errorf("repo.MealRepo.Upsert: day %s: %w", meal.DayID, domain.ErrNotFound)
		}
		return domain.Meal{}, fmt.Errorf("repo.MealRepo.Upsert: %w", err)
	}
	return saved.meal, nil
}

func (r *pgMealRepo) DeleteByBookingID(ctx context.Context, bookingID string) ([]uuid.UUID, error) {
	const q = `
		DELETE FROM meals m
		USING days d
		WHERE m.day_id = d.id AND m.booking_id = @booking_id
		RETURNING d.trip_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("repo.MealRepo.DeleteByBookingID: %w", err)
	}
	defer rows.Close()

	seen := map[uuid.UUID]bool{}
	tripIDs := []uuid.UUID{}
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repo.MealRepo.DeleteByBookingID: scan: %w", err)
		}
		tid := uuid.UUID(id.Bytes)
		if !seen[tid] {
			seen[tid] = true
			tripIDs = append(tripIDs, tid)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MealRepo.DeleteByBookingID: rows: %w", err)
	}
	return tripIDs, nil
}

// slottedMeal carries the slot column alongside the meal it keys.
type slottedMeal struct {
	slot domain.MealSlot
	meal domain.Meal
}

func listMealsByTrip(ctx context.Context, q querier, tripID uuid.UUID) ([]slottedMeal, error) {
	const stmt = `
		SELECT m.id, m.day_id, m.slot, m.meal_type, m.restaurant, m.cuisine, m.location,
		       m.price_bucket, m.meal_time, m.meal_date, m.provider, m.notes, m.booking_id
		FROM meals m
		JOIN days d ON d.id = m.day_id
		WHERE d.trip_id = @trip_id
		ORDER BY d.day_number, m.slot`

	rows, err := q.Query(ctx, stmt, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var out []slottedMeal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("list meals: scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meals: rows: %w", err)
	}
	return out, nil
}

func scanMeal(s scanner) (slottedMeal, error) {
	var (
		m                         domain.Meal
		slot, mealType            string
		id, dayID                 pgtype.UUID
		cuisine, price, bookingID pgtype.Text
		mealDate                  pgtype.Date
	)
	err := s.Scan(&id, &dayID, &slot, &mealType, &m.Restaurant, &cuisine, &m.Location,
		&price, &m.Time, &mealDate, &m.Provider, &m.Notes, &bookingID)
	if err != nil {
		return slottedMeal{}, err
	}

	m.ID = uuid.UUID(id.Bytes)
	m.DayID = uuid.UUID(dayID.Bytes)
	m.Type = domain.MealType(mealType)
	m.Cuisine = cuisine.String
	m.Price = domain.PriceBucket(price.String)
	m.BookingID = bookingID.String
	if mealDate.Valid {
		m.Date = mealDate.Time
	}
	return slottedMeal{slot: domain.MealSlot(slot), meal: m}, nil
}

// nilIfEmpty maps "" to SQL NULL for nullable text columns.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
