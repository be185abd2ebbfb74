package ml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqft <= 1200 ? (location idx 3 set ? 90 : 60) : 150
func sampleTree() *DecisionTreeRegressor {
	return NewDecisionTreeRegressor([]RegressionNode{
		{FeatureIdx: 0, Threshold: 1200, LeftChild: 1, RightChild: 4},
		{FeatureIdx: 3, Threshold: 0.5, LeftChild: 2, RightChild: 3},
		{FeatureIdx: -1, LeftChild: -1, RightChild: -1, Value: 60, IsLeaf: true},
		{FeatureIdx: -1, LeftChild: -1, RightChild: -1, Value: 90, IsLeaf: true},
		{FeatureIdx: -1, LeftChild: -1, RightChild: -1, Value: 150, IsLeaf: true},
	})
}

func TestDecisionTreeRegressor_Predict(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name     string
		features []float64
		want     float64
	}{
		{name: "small unmatched", features: []float64{1000, 2, 2, 0, 0}, want: 60},
		{name: "small matched", features: []float64{1000, 2, 2, 1, 0}, want: 90},
		{name: "large", features: []float64{2400, 3, 4, 0, 1}, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tree.Predict(tt.features)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 4, tree.MinFeatures())
}

func TestDecisionTreeRegressor_PredictErrors(t *testing.T) {
	_, err := (&DecisionTreeRegressor{}).Predict([]float64{1})
	assert.ErrorIs(t, err, ErrNotTrained)

	_, err = sampleTree().Predict([]float64{1000, 2})
	assert.ErrorContains(t, err, "feature index out of range")

	cyclic := NewDecisionTreeRegressor([]RegressionNode{
		{FeatureIdx: 0, Threshold: 10, LeftChild: 0, RightChild: 0},
	})
	_, err = cyclic.Predict([]float64{1})
	assert.ErrorContains(t, err, "cycle")
}

func TestDecisionTreeRegressor_MarshalAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	payload, err := json.Marshal(sampleTree())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	loaded, err := LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, TypeDecisionTreeRegressor, loaded.Type())

	got, err := loaded.Predict([]float64{1000, 2, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 90.0, got)
}
