package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homeprice/internal/ml"
	"homeprice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "columns.json",
		`{"data_columns": ["total_sqft", "bath", "bhk", "1st phase jp nagar", "indira nagar"]}`)
	writeFile(t, dir, "model.json",
		`{"type": "linear_regression", "coefficients": [0.1, 2, 3, 40, 50], "intercept": -5}`)

	schema, regressor, err := NewFileSource(dir, "columns.json", "model.json").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.ColumnSchema{"total_sqft", "bath", "bhk", "1st phase jp nagar", "indira nagar"}, schema)
	assert.Equal(t, ml.TypeLinearRegression, regressor.Type())

	got, err := regressor.Predict([]float64{1000, 2, 2, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, -5+100+4+6+40, got, 1e-9)
}

func TestFileSource_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		model   string
		want    string
	}{
		{
			name:  "missing columns file",
			model: `{"type":"linear_regression","coefficients":[1,1,1]}`,
			want:  "failed to read columns",
		},
		{
			name:    "malformed columns",
			columns: `{"data_columns": [`,
			model:   `{"type":"linear_regression","coefficients":[1,1,1]}`,
			want:    "failed to parse columns",
		},
		{
			name:    "columns without data_columns",
			columns: `{"columns": ["total_sqft"]}`,
			model:   `{"type":"linear_regression","coefficients":[1,1,1]}`,
			want:    "missing data_columns",
		},
		{
			name:    "missing model file",
			columns: `{"data_columns": ["total_sqft", "bath", "bhk"]}`,
			want:    "failed to load model",
		},
		{
			name:    "unsupported model",
			columns: `{"data_columns": ["total_sqft", "bath", "bhk"]}`,
			model:   `{"type":"svm"}`,
			want:    "unsupported model type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.columns != "" {
				writeFile(t, dir, "columns.json", tt.columns)
			}
			if tt.model != "" {
				writeFile(t, dir, "model.json", tt.model)
			}

			schema, regressor, err := NewFileSource(dir, "columns.json", "model.json").Load(context.Background())
			assert.ErrorContains(t, err, tt.want)
			assert.Nil(t, schema)
			assert.Nil(t, regressor)
		})
	}
}

func TestFileSource_LoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewFileSource(t.TempDir(), "columns.json", "model.json").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveDir(t *testing.T) {
	abs := t.TempDir()
	assert.Equal(t, abs, ResolveDir(abs))
	assert.Equal(t, "does-not-exist-anywhere", ResolveDir("does-not-exist-anywhere"))
}

func TestFileSource_ShippedArtifacts(t *testing.T) {
	schema, regressor, err := NewFileSource("../../artifacts", "columns.json", "banglore_home_prices_model.json").
		Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"total_sqft", "bath", "bhk"}, []string(schema[:model.NumericFeatureCount]))
	fc, ok := regressor.(ml.FeatureCounter)
	require.True(t, ok)
	assert.Equal(t, len(schema), fc.NumFeatures())
	for _, loc := range schema.Locations() {
		assert.Equal(t, strings.ToLower(loc), loc)
	}
}
