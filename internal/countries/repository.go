package countries

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// Repository reads reference data from the countries table
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new countries repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type countryRow struct {
	models.CountrySubject
	Aliases pq.StringArray `db:"aliases"`
}

// List returns every country ordered by code
func (r *Repository) List(ctx context.Context) ([]models.CountrySubject, error) {
	query := `
		SELECT code, name, currency_code, world_bank_code, latitude, longitude, aliases
		FROM countries
		ORDER BY code
	`

	var rows []countryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	out := make([]models.CountrySubject, len(rows))
	for i, row := range rows {
		out[i] = row.CountrySubject
		out[i].Aliases = []string(row.Aliases)
	}

	return out, nil
}

// LoadDirectory snapshots the table into a StaticDirectory
func (r *Repository) LoadDirectory(ctx context.Context) (*StaticDirectory, error) {
	subjects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("countries table is empty")
	}

	logger.Info("country directory loaded from database", zap.Int("countries", len(subjects)))

	return NewStaticDirectory(subjects), nil
}

// LoadOrBuiltin loads the directory from repo, falling back to the builtin
// table when repo is nil or unavailable
func LoadOrBuiltin(ctx context.Context, repo *Repository) *StaticDirectory {
	if repo == nil {
		return Builtin()
	}

	dir, err := repo.LoadDirectory(ctx)
	if err != nil {
		logger.Warn("using builtin country table", zap.Error(err))
		return Builtin()
	}
	return dir
}
