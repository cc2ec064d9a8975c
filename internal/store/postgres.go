package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/config"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

// PostgresStore implements Store using pgxpool. Answers and reports are
// stored as JSONB so the questionnaire can evolve without migrations.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, cfg config.StoreConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if cfg.MaxConns > 0 {
		maxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		minConns = cfg.MinConns
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id            TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	business_name TEXT NOT NULL,
	owner_name    TEXT NOT NULL,
	tier          TEXT NOT NULL,
	total_score   DOUBLE PRECISION NOT NULL,
	answers       JSONB NOT NULL,
	report        JSONB NOT NULL,
	advisory      TEXT NOT NULL,
	polished      BOOLEAN NOT NULL DEFAULT false,
	generated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_assessments_business_name ON assessments(business_name);
CREATE INDEX IF NOT EXISTS idx_assessments_tier ON assessments(tier);
CREATE INDEX IF NOT EXISTS idx_assessments_generated_at ON assessments(generated_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// SaveAssessment inserts a completed assessment. A missing ID or timestamp
// is filled in here so callers can hand over the engine output directly.
func (s *PostgresStore) SaveAssessment(ctx context.Context, a *model.Assessment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.GeneratedAt.IsZero() {
		a.GeneratedAt = time.Now().UTC()
	}

	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal answers")
	}
	reportJSON, err := json.Marshal(a.Report)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal report")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessments (id, business_name, owner_name, tier, total_score, answers, report, advisory, polished, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.Answers.BusinessName, a.Answers.OwnerName,
		a.Report.ReadinessTier, a.Report.TotalScore,
		answersJSON, reportJSON, a.Advisory, a.Polished, a.GeneratedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: insert assessment %s", a.ID)
	}
	return nil
}

func (s *PostgresStore) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	var a model.Assessment
	var answersJSON, reportJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, answers, report, advisory, polished, generated_at FROM assessments WHERE id = $1`,
		id,
	).Scan(&a.ID, &answersJSON, &reportJSON, &a.Advisory, &a.Polished, &a.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("postgres: assessment not found: %s", id)
		}
		return nil, eris.Wrapf(err, "postgres: get assessment %s", id)
	}

	if err := json.Unmarshal(answersJSON, &a.Answers); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal answers")
	}
	if err := json.Unmarshal(reportJSON, &a.Report); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal report")
	}
	return &a, nil
}

func (s *PostgresStore) ListAssessments(ctx context.Context, filter AssessmentFilter) ([]model.Assessment, error) {
	query := `SELECT id, answers, report, advisory, polished, generated_at FROM assessments`
	var conditions []string
	var args []any

	if filter.BusinessName != "" {
		args = append(args, filter.BusinessName)
		conditions = append(conditions, "business_name = $"+strconv.Itoa(len(args)))
	}
	if filter.Tier != "" {
		args = append(args, filter.Tier)
		conditions = append(conditions, "tier = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY generated_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list assessments")
	}
	defer rows.Close()

	var out []model.Assessment
	for rows.Next() {
		var a model.Assessment
		var answersJSON, reportJSON []byte
		if err := rows.Scan(&a.ID, &answersJSON, &reportJSON, &a.Advisory, &a.Polished, &a.GeneratedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan assessment")
		}
		if err := json.Unmarshal(answersJSON, &a.Answers); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal answers")
		}
		if err := json.Unmarshal(reportJSON, &a.Report); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal report")
		}
		out = append(out, a)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list assessments")
}
