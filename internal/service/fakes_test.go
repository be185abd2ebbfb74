package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"homeprice/internal/ml"
	"homeprice/internal/model"
)

var testSchema = model.ColumnSchema{"total_sqft", "bath", "bhk", "1st phase jp nagar", "indira nagar"}

// sumTimesTen returns sum(vector)*10 and remembers the last input
type sumTimesTen struct {
	mu   sync.Mutex
	last []float64
}

func (m *sumTimesTen) Type() string { return "sum_times_ten" }

func (m *sumTimesTen) Predict(features []float64) (float64, error) {
	m.mu.Lock()
	m.last = append([]float64(nil), features...)
	m.mu.Unlock()
	sum := 0.0
	for _, x := range features {
		sum += x
	}
	return sum * 10, nil
}

func (m *sumTimesTen) lastInput() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// constModel always returns value, err
type constModel struct {
	value float64
	err   error
}

func (m constModel) Type() string { return "const" }

func (m constModel) Predict([]float64) (float64, error) { return m.value, m.err }

type fakeSource struct {
	schema model.ColumnSchema
	model  ml.Regressor
	err    error
	delay  time.Duration
	calls  atomic.Int32
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Load(ctx context.Context) (model.ColumnSchema, ml.Regressor, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.schema, f.model, nil
}

type recordingObserver struct {
	mu      sync.Mutex
	loads   []bool
	matches []string
	errors  []string
}

func (r *recordingObserver) ArtifactsLoaded(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads = append(r.loads, ok)
}

func (r *recordingObserver) ObservePrediction(match string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, match)
}

func (r *recordingObserver) ObservePredictionError(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, reason)
}

var errDiskGone = errors.New("disk gone")
