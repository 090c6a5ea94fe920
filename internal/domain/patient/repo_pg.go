package patient

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgStore implements Store on Postgres. It keeps whole-document semantics:
// Load reads every row and Save replaces the table contents in a single
// transaction, so the two backends stay behaviorally interchangeable.
type pgStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

// EnsureSchema creates the patient_record table when it is missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS patient_record (
			id     TEXT PRIMARY KEY,
			name   TEXT NOT NULL,
			city   TEXT NOT NULL,
			age    INT NOT NULL,
			gender TEXT NOT NULL,
			height DOUBLE PRECISION NOT NULL,
			weight DOUBLE PRECISION NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create patient_record table: %w", err)
	}
	return nil
}

func (s *pgStore) Load(ctx context.Context) (Collection, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, city, age, gender, height, weight FROM patient_record`)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	defer rows.Close()

	col := Collection{}
	for rows.Next() {
		var id string
		var a Attributes
		if err := rows.Scan(&id, &a.Name, &a.City, &a.Age, &a.Gender, &a.Height, &a.Weight); err != nil {
			return nil, fmt.Errorf("scan patient record: %w", err)
		}
		col[id] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	return col, nil
}

func (s *pgStore) Save(ctx context.Context, col Collection) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM patient_record`); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	batch := &pgx.Batch{}
	for id, a := range col {
		batch.Queue(
			`INSERT INTO patient_record (id, name, city, age, gender, height, weight) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			id, a.Name, a.City, a.Age, a.Gender, a.Height, a.Weight,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}
