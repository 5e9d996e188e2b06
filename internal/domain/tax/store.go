package tax

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads and seeds bracket tables kept in Postgres.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type jurisdictionRow struct {
	code   string
	name   string
	exempt bool
	note   string
}

func (s *Store) LoadRegistry(ctx context.Context) (*Registry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT code, name, exempt, COALESCE(note, '')
    FROM tax_jurisdictions
    ORDER BY code
  `)
	if err != nil {
		return nil, fmt.Errorf("list jurisdictions: %w", err)
	}
	var jurisdictions []jurisdictionRow
	for rows.Next() {
		var row jurisdictionRow
		if err := rows.Scan(&row.code, &row.name, &row.exempt, &row.note); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan jurisdiction: %w", err)
		}
		jurisdictions = append(jurisdictions, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jurisdictions: %w", err)
	}

	brackets, err := s.loadBrackets(ctx)
	if err != nil {
		return nil, err
	}

	var federal Jurisdiction
	var states []Jurisdiction
	for _, row := range jurisdictions {
		var j Jurisdiction
		if row.exempt {
			j = Exempt(row.code, row.name, row.note)
		} else {
			j = Taxed(row.code, row.name, brackets[row.code]).WithNote(row.note)
		}
		if row.code == FederalCode {
			federal = j
			continue
		}
		states = append(states, j)
	}
	return NewRegistry(federal, states)
}

func (s *Store) loadBrackets(ctx context.Context) (map[string][]Bracket, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT jurisdiction_code, lower_bound, upper_bound, rate
    FROM tax_brackets
    ORDER BY jurisdiction_code, position
  `)
	if err != nil {
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	defer rows.Close()

	out := map[string][]Bracket{}
	for rows.Next() {
		var code string
		var b Bracket
		if err := rows.Scan(&code, &b.Lower, &b.Upper, &b.Rate); err != nil {
			return nil, fmt.Errorf("scan bracket: %w", err)
		}
		out[code] = append(out[code], b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	return out, nil
}

// Seed inserts every jurisdiction of reg that the database does not have
// yet. Existing rows are left untouched so edited tables survive restarts.
func (s *Store) Seed(ctx context.Context, reg *Registry) error {
	all := append([]Jurisdiction{reg.Federal()}, reg.States()...)
	for _, j := range all {
		if err := s.seedJurisdiction(ctx, j); err != nil {
			return fmt.Errorf("seed %s: %w", j.Code, err)
		}
	}
	return nil
}

func (s *Store) seedJurisdiction(ctx context.Context, j Jurisdiction) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    INSERT INTO tax_jurisdictions (code, name, exempt, note)
    VALUES ($1, $2, $3, NULLIF($4, ''))
    ON CONFLICT (code) DO NOTHING
  `, j.Code, j.Name, j.IsExempt(), j.Note)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	for i, b := range j.Brackets() {
		if _, err := tx.Exec(ctx, `
      INSERT INTO tax_brackets (jurisdiction_code, position, lower_bound, upper_bound, rate)
      VALUES ($1, $2, $3, $4, $5)
    `, j.Code, i, b.Lower, b.Upper, b.Rate); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
