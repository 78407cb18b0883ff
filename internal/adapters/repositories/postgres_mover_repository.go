package repositories

import (
	"context"
	"database/sql"
	"dormdash-route-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Postgres-backed implementation of the MoverRepository port.
// Availability is stored as JSONB: {"MON": [["09:00", "17:00"]], ...}.
type PostgresMoverRepository struct{ DB *sql.DB }

func NewPostgresMoverRepository(db *sql.DB) *PostgresMoverRepository {
	return &PostgresMoverRepository{DB: db}
}

func (r *PostgresMoverRepository) GetAvailability(ctx context.Context, moverID uuid.UUID) (domain.Availability, error) {
	if r.DB == nil {
		return nil, errors.New("postgres mover repository: DB is nil")
	}

	query := `
	SELECT availability
	FROM movers
	WHERE id = $1;
	`

	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, moverID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMoverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get availability: query movers table: %w", err)
	}

	availability, err := decodeAvailability(raw)
	if err != nil {
		return nil, fmt.Errorf("get availability: mover %s: %w", moverID, err)
	}
	if availability == nil {
		return nil, domain.ErrMoverNotFound
	}

	return availability, nil
}

// decodeAvailability returns nil for a NULL or JSON null column.
func decodeAvailability(raw []byte) (domain.Availability, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var a domain.Availability
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	return a, nil
}
