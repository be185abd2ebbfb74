package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks prediction failures caused by the caller's values
// rather than by the model or the artifacts.
var ErrInvalidInput = errors.New("invalid input")

// ArtifactLoadError is returned when the schema or model cannot be loaded
type ArtifactLoadError struct {
	Source string
	Err    error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("error loading artifacts from %s: %v", e.Source, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error { return e.Err }

// PredictionError wraps any failure while encoding or invoking the model
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
