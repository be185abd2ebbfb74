package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// PredictionObserver receives per-prediction outcomes
type PredictionObserver interface {
	ObservePrediction(locationMatch string, elapsed time.Duration)
	ObservePredictionError(reason string)
}

// Prediction is a rounded price estimate
type Prediction struct {
	Price    float64
	Location LocationMatch
}

// Predictor encodes request attributes and invokes the loaded model
type Predictor struct {
	store    *ArtifactStore
	logger   *zap.Logger
	observer PredictionObserver
}

// NewPredictor creates a predictor over store
func NewPredictor(store *ArtifactStore, logger *zap.Logger, observer PredictionObserver) *Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{
		store:    store,
		logger:   logger,
		observer: observer,
	}
}

// Predict returns the estimated price for a property. Artifacts are loaded
// on first use; load failures come back as *ArtifactLoadError, everything
// else as *PredictionError.
func (p *Predictor) Predict(ctx context.Context, location string, sqft, bath, bhk float64) (*Prediction, error) {
	start := time.Now()

	state, err := p.store.get(ctx)
	if err != nil {
		p.observeError("artifacts")
		return nil, err
	}

	inputs := []struct {
		name  string
		value float64
	}{{"total_sqft", sqft}, {"bath", bath}, {"bhk", bhk}}
	for _, in := range inputs {
		if math.IsNaN(in.value) || math.IsInf(in.value, 0) {
			p.observeError("invalid_input")
			return nil, &PredictionError{Err: fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, in.name)}
		}
	}

	x, match := state.encoder.Encode(location, sqft, bath, bhk)

	raw, err := state.model.Predict(x)
	if err != nil {
		p.observeError("model")
		return nil, &PredictionError{Err: err}
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		p.observeError("model")
		return nil, &PredictionError{Err: fmt.Errorf("model returned non-finite value %v", raw)}
	}

	price := RoundPrice(raw)
	elapsed := time.Since(start)
	if p.observer != nil {
		p.observer.ObservePrediction(match.Label(), elapsed)
	}
	p.logger.Debug("prediction",
		zap.String("location", location),
		zap.Stringer("location_match", match),
		zap.Float64("total_sqft", sqft),
		zap.Float64("bath", bath),
		zap.Float64("bhk", bhk),
		zap.Float64("price", price),
		zap.Duration("elapsed", elapsed),
	)

	return &Prediction{Price: price, Location: match}, nil
}

func (p *Predictor) observeError(reason string) {
	if p.observer != nil {
		p.observer.ObservePredictionError(reason)
	}
}

// RoundPrice rounds the exact binary value of v to two decimals, ties to
// even: 123.456 -> 123.46, 2.675 -> 2.67 (stored as 2.67499...), 0.125 -> 0.12.
func RoundPrice(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
