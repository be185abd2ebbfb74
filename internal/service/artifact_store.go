package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"homeprice/internal/ml"
	"homeprice/internal/model"

	"go.uber.org/zap"
)

// ArtifactSource produces the column schema and the trained model
type ArtifactSource interface {
	Name() string
	Load(ctx context.Context) (model.ColumnSchema, ml.Regressor, error)
}

// LoadObserver is notified after every load attempt
type LoadObserver interface {
	ArtifactsLoaded(ok bool)
}

// artifacts is the immutable state published by a successful load
type artifacts struct {
	schema  model.ColumnSchema
	model   ml.Regressor
	encoder *Encoder
}

// ArtifactStore loads the schema and model once and shares them read-only.
// A failed load leaves the store empty so a later call can retry.
type ArtifactStore struct {
	source   ArtifactSource
	logger   *zap.Logger
	observer LoadObserver

	mu    sync.RWMutex
	state *artifacts
}

// NewArtifactStore creates a store backed by source. Nothing is read until
// Load or one of the accessors is called.
func NewArtifactStore(source ArtifactSource, logger *zap.Logger, observer LoadObserver) *ArtifactStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArtifactStore{
		source:   source,
		logger:   logger,
		observer: observer,
	}
}

// Load reads the artifacts if they are not loaded yet. Schema and model are
// applied together: on any failure the store is left unchanged.
func (s *ArtifactStore) Load(ctx context.Context) error {
	_, err := s.get(ctx)
	return err
}

// Loaded reports whether a load has succeeded
func (s *ArtifactStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state != nil
}

// Locations returns the known location names, loading artifacts on first use
func (s *ArtifactStore) Locations(ctx context.Context) ([]string, error) {
	state, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	return state.schema.Locations(), nil
}

// Schema returns a copy of the full column schema
func (s *ArtifactStore) Schema(ctx context.Context) (model.ColumnSchema, error) {
	state, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	return state.schema.Clone(), nil
}

func (s *ArtifactStore) get(ctx context.Context) (*artifacts, error) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	if state != nil {
		return state, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != nil {
		return s.state, nil
	}

	state, err := s.load(ctx)
	if s.observer != nil {
		s.observer.ArtifactsLoaded(err == nil)
	}
	if err != nil {
		s.logger.Error("failed to load artifacts",
			zap.String("source", s.source.Name()),
			zap.Error(err),
		)
		return nil, &ArtifactLoadError{Source: s.source.Name(), Err: err}
	}

	s.state = state
	s.logger.Info("artifacts loaded",
		zap.String("source", s.source.Name()),
		zap.Int("columns", len(state.schema)),
		zap.Int("locations", len(state.schema)-model.NumericFeatureCount),
		zap.String("model_type", state.model.Type()),
	)
	return state, nil
}

func (s *ArtifactStore) load(ctx context.Context) (*artifacts, error) {
	schema, regressor, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if regressor == nil {
		return nil, errors.New("source returned no model")
	}
	if len(schema) < model.NumericFeatureCount {
		return nil, fmt.Errorf("schema has %d columns, need at least %d", len(schema), model.NumericFeatureCount)
	}
	if fc, ok := regressor.(ml.FeatureCounter); ok && fc.NumFeatures() != len(schema) {
		return nil, fmt.Errorf("model expects %d features but schema has %d columns", fc.NumFeatures(), len(schema))
	}
	if tree, ok := regressor.(*ml.DecisionTreeRegressor); ok && tree.MinFeatures() > len(schema) {
		return nil, fmt.Errorf("model splits on feature %d but schema has %d columns", tree.MinFeatures()-1, len(schema))
	}

	schema = schema.Clone()
	return &artifacts{
		schema:  schema,
		model:   regressor,
		encoder: NewEncoder(schema),
	}, nil
}
