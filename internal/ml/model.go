package ml

import "errors"

// Model types recognized in serialized artifacts
const (
	TypeLinearRegression      = "linear_regression"
	TypeDecisionTreeRegressor = "decision_tree_regressor"
)

var (
	ErrUnsupportedModel = errors.New("unsupported model type")
	ErrNotTrained       = errors.New("model not trained")
	ErrFeatureCount     = errors.New("feature count mismatch")
)

// Regressor maps a feature vector to a single numeric prediction.
// Implementations are read-only after loading and safe for concurrent use.
type Regressor interface {
	Predict(features []float64) (float64, error)
	Type() string
}

// FeatureCounter is implemented by regressors that know their input width.
// An artifact store uses it to reject a model that disagrees with the schema.
type FeatureCounter interface {
	NumFeatures() int
}

// envelope is the common header of every serialized model
type envelope struct {
	Type string `json:"type"`
}
