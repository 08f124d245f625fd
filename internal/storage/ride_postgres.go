package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feretizpina/uber-slack/internal/domain/ride"
)

// RidePostgres is the PostgreSQL-backed ride repository.
type RidePostgres struct {
	db *sql.DB
}

// NewRidePostgres creates a ride repository over an open pool.
func NewRidePostgres(db *sql.DB) *RidePostgres {
	return &RidePostgres{db: db}
}

// Create inserts a new ride and stamps both timestamps.
func (r *RidePostgres) Create(ctx context.Context, rd *ride.Ride) error {
	if rd.ID == uuid.Nil {
		rd.ID = uuid.New()
	}
	now := time.Now().UTC()
	rd.CreatedAt = now
	rd.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rides (
			id, user_id, product_id,
			start_latitude, start_longitude,
			end_latitude, end_longitude,
			surge_confirmation_id, request_id, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, rd.ID, rd.UserID, rd.ProductID,
		rd.StartLatitude, rd.StartLongitude,
		rd.EndLatitude, rd.EndLongitude,
		nullIfEmpty(rd.SurgeConfirmationID), nullIfEmpty(rd.RequestID), rd.Status,
		rd.CreatedAt, rd.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert ride: %w", err)
	}
	return nil
}

// Update writes the mutable fields back and bumps updated_at.
func (r *RidePostgres) Update(ctx context.Context, rd *ride.Ride) error {
	rd.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE rides
		SET product_id = $1,
		    surge_confirmation_id = $2,
		    request_id = $3,
		    status = $4,
		    updated_at = $5
		WHERE id = $6
	`, rd.ProductID, nullIfEmpty(rd.SurgeConfirmationID), nullIfEmpty(rd.RequestID),
		rd.Status, rd.UpdatedAt, rd.ID)
	if err != nil {
		return fmt.Errorf("update ride: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ride.ErrRideNotFound
	}
	return nil
}

// MostRecentByUser returns the user's most recently updated ride.
func (r *RidePostgres) MostRecentByUser(ctx context.Context, userID string) (*ride.Ride, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_id,
		       start_latitude, start_longitude,
		       end_latitude, end_longitude,
		       surge_confirmation_id, request_id, status,
		       created_at, updated_at
		FROM rides
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, userID)

	var rd ride.Ride
	var surgeID, requestID sql.NullString
	err := row.Scan(
		&rd.ID, &rd.UserID, &rd.ProductID,
		&rd.StartLatitude, &rd.StartLongitude,
		&rd.EndLatitude, &rd.EndLongitude,
		&surgeID, &requestID, &rd.Status,
		&rd.CreatedAt, &rd.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ride.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select ride: %w", err)
	}

	rd.SurgeConfirmationID = surgeID.String
	rd.RequestID = requestID.String
	return &rd, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
