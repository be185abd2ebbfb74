package ml

import (
	"encoding/json"
	"fmt"
)

// LinearRegression is an ordinary least squares model: intercept + coef·x
type LinearRegression struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// NewLinearRegression builds a model from fitted parameters
func NewLinearRegression(coefficients []float64, intercept float64) *LinearRegression {
	coef := make([]float64, len(coefficients))
	copy(coef, coefficients)
	return &LinearRegression{Coefficients: coef, Intercept: intercept}
}

func (lr *LinearRegression) Type() string { return TypeLinearRegression }

func (lr *LinearRegression) NumFeatures() int { return len(lr.Coefficients) }

func (lr *LinearRegression) Predict(features []float64) (float64, error) {
	if len(lr.Coefficients) == 0 {
		return 0, ErrNotTrained
	}
	if len(features) != len(lr.Coefficients) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), len(lr.Coefficients))
	}
	sum := lr.Intercept
	for i, x := range features {
		sum += lr.Coefficients[i] * x
	}
	return sum, nil
}

func (lr *LinearRegression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         string    `json:"type"`
		Coefficients []float64 `json:"coefficients"`
		Intercept    float64   `json:"intercept"`
	}{TypeLinearRegression, lr.Coefficients, lr.Intercept})
}
