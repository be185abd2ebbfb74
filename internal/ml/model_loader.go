package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadModel reads a serialized regressor from disk
func LoadModel(path string) (Regressor, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeModel(payload)
}

// DecodeModel dispatches on the "type" field of a serialized regressor
func DecodeModel(payload []byte) (Regressor, error) {
	var head envelope
	if err := json.Unmarshal(payload, &head); err != nil {
		return nil, fmt.Errorf("decode model header: %w", err)
	}

	switch head.Type {
	case TypeLinearRegression:
		var lr LinearRegression
		if err := json.Unmarshal(payload, &lr); err != nil {
			return nil, fmt.Errorf("decode %s: %w", head.Type, err)
		}
		if len(lr.Coefficients) == 0 {
			return nil, fmt.Errorf("decode %s: %w", head.Type, ErrNotTrained)
		}
		return &lr, nil
	case TypeDecisionTreeRegressor:
		var dt DecisionTreeRegressor
		if err := json.Unmarshal(payload, &dt); err != nil {
			return nil, fmt.Errorf("decode %s: %w", head.Type, err)
		}
		if len(dt.nodes) == 0 {
			return nil, fmt.Errorf("decode %s: %w", head.Type, ErrNotTrained)
		}
		return &dt, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, head.Type)
	}
}
