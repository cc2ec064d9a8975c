// Package store persists completed assessments. The scoring engine never
// depends on it; only the serve and CLI glue write through this interface.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock implements the
// same surface, which is what makes the store unit-testable.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// AssessmentFilter specifies criteria for listing assessments.
type AssessmentFilter struct {
	BusinessName string `json:"business_name,omitempty"`
	Tier         string `json:"tier,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	Offset       int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessments.
type Store interface {
	SaveAssessment(ctx context.Context, a *model.Assessment) error
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]model.Assessment, error)

	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
