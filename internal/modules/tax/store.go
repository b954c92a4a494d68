// README: Audit store for completed calculations, backed by PostgreSQL.
package tax

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CalculationRecord is the audit row written after each completed
// calculation. It keeps aggregates only, not the individual passages.
type CalculationRecord struct {
	ID              int64
	VehicleType     string
	PassageCount    int
	TotalTax        int
	TollFreeVehicle bool
	CalculatedAt    time.Time
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) RecordCalculation(ctx context.Context, rec *CalculationRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO tax_calculations (
			vehicle_type, passage_count, total_tax, toll_free_vehicle, calculated_at
		) VALUES ($1, $2, $3, $4, $5)`,
		rec.VehicleType,
		rec.PassageCount,
		rec.TotalTax,
		rec.TollFreeVehicle,
		rec.CalculatedAt,
	)
	return err
}

// PruneOlderThan deletes audit rows calculated before the cutoff and returns
// how many were removed.
func (s *Store) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM tax_calculations
		WHERE calculated_at < $1`, cutoff,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CountSince reports the number of calculations recorded at or after the
// given time. Used by the sweeper tests and operational checks.
func (s *Store) CountSince(ctx context.Context, since time.Time) (int64, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM tax_calculations
		WHERE calculated_at >= $1`, since,
	)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
