package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homeprice/internal/ml"
	"homeprice/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Schema expected by PostgresSource:
//
//	CREATE TABLE model_columns (
//	    model_name TEXT NOT NULL,
//	    position   INT  NOT NULL,
//	    name       TEXT NOT NULL,
//	    PRIMARY KEY (model_name, position)
//	);
//	CREATE TABLE price_models (
//	    name         TEXT PRIMARY KEY,
//	    model_type   TEXT NOT NULL,
//	    coefficients vector,
//	    intercept    DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    payload      JSONB
//	);
//
// payload holds the model's JSON serialization and is read first when set.
// A linear model may instead carry only the pgvector column, which stores
// float32, so its coefficients come back with about 7 significant digits.
// Keep the JSON in payload when the model must score identically to the file
// source.

const (
	columnsQuery = `SELECT name FROM model_columns WHERE model_name = $1 ORDER BY position`
	modelQuery   = `SELECT model_type, coefficients, intercept, payload FROM price_models WHERE name = $1`
)

// PostgresSource reads artifacts for one named model from PostgreSQL
type PostgresSource struct {
	db        *sqlx.DB
	modelName string
}

type modelRow struct {
	ModelType    string           `db:"model_type"`
	Coefficients *pgvector.Vector `db:"coefficients"`
	Intercept    float64          `db:"intercept"`
	Payload      []byte           `db:"payload"`
}

// NewPostgresSource connects to PostgreSQL
func NewPostgresSource(dsn string, maxConn, maxIdleConn int, modelName string) (*PostgresSource, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresSourceFromDB(db, modelName), nil
}

// NewPostgresSourceFromDB wraps an existing connection pool
func NewPostgresSourceFromDB(db *sqlx.DB, modelName string) *PostgresSource {
	return &PostgresSource{db: db, modelName: modelName}
}

// Close closes the database connection
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

// Name identifies the source in logs and errors
func (s *PostgresSource) Name() string {
	return "postgres:" + s.modelName
}

// Load reads the ordered column names and the model row
func (s *PostgresSource) Load(ctx context.Context) (model.ColumnSchema, ml.Regressor, error) {
	var columns []string
	if err := s.db.SelectContext(ctx, &columns, columnsQuery, s.modelName); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("no columns stored for model %q", s.modelName)
	}

	var row modelRow
	if err := s.db.GetContext(ctx, &row, modelQuery, s.modelName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("model %q not found", s.modelName)
		}
		return nil, nil, fmt.Errorf("failed to fetch model: %w", err)
	}

	regressor, err := row.regressor()
	if err != nil {
		return nil, nil, fmt.Errorf("model %q: %w", s.modelName, err)
	}

	return model.ColumnSchema(columns), regressor, nil
}

func (r modelRow) regressor() (ml.Regressor, error) {
	if len(r.Payload) > 0 {
		return ml.DecodeModel(r.Payload)
	}
	if r.ModelType == ml.TypeLinearRegression && r.Coefficients != nil {
		coef := r.Coefficients.Slice()
		if len(coef) == 0 {
			return nil, ml.ErrNotTrained
		}
		values := make([]float64, len(coef))
		for i, c := range coef {
			values[i] = float64(c)
		}
		return ml.NewLinearRegression(values, r.Intercept), nil
	}
	return nil, fmt.Errorf("%s row has no payload", r.ModelType)
}
