package main

import (
	"context"
	"testing"

	"homeprice/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtifactSource_File(t *testing.T) {
	cfg := &config.Config{Artifacts: config.ArtifactConfig{
		Source:      config.ArtifactSourceFile,
		Dir:         "../../artifacts",
		ColumnsFile: "columns.json",
		ModelFile:   "banglore_home_prices_model.json",
	}}

	src, closeSource, err := newArtifactSource(cfg)
	require.NoError(t, err)
	defer closeSource()

	assert.Contains(t, src.Name(), "artifacts")
	schema, regressor, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Greater(t, len(schema), 3)
	assert.NotNil(t, regressor)
}
