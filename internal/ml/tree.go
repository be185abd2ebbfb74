package ml

import (
	"encoding/json"
	"errors"
)

// DecisionTreeRegressor walks a flattened binary tree whose leaves hold values
type DecisionTreeRegressor struct {
	nodes []RegressionNode
}

// RegressionNode is one node of a flattened tree. Children are indexes into
// the node slice; a leaf carries the predicted value.
type RegressionNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	Value      float64 `json:"value"`
	IsLeaf     bool    `json:"is_leaf"`
}

// NewDecisionTreeRegressor builds a tree from already flattened nodes
func NewDecisionTreeRegressor(nodes []RegressionNode) *DecisionTreeRegressor {
	n := make([]RegressionNode, len(nodes))
	copy(n, nodes)
	return &DecisionTreeRegressor{nodes: n}
}

func (dt *DecisionTreeRegressor) Type() string { return TypeDecisionTreeRegressor }

// MinFeatures is the smallest vector width every split can address
func (dt *DecisionTreeRegressor) MinFeatures() int {
	width := 0
	for _, node := range dt.nodes {
		if !node.IsLeaf && node.FeatureIdx+1 > width {
			width = node.FeatureIdx + 1
		}
	}
	return width
}

func (dt *DecisionTreeRegressor) Predict(features []float64) (float64, error) {
	if len(dt.nodes) == 0 {
		return 0, ErrNotTrained
	}
	idx := 0
	// a well formed tree reaches a leaf in at most len(nodes) steps
	for steps := 0; steps <= len(dt.nodes); steps++ {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.Value, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return 0, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.nodes) {
			return 0, errors.New("invalid tree state")
		}
	}
	return 0, errors.New("tree contains a cycle")
}

func (dt *DecisionTreeRegressor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string           `json:"type"`
		Nodes []RegressionNode `json:"nodes"`
	}{Type: TypeDecisionTreeRegressor, Nodes: dt.nodes})
}

func (dt *DecisionTreeRegressor) UnmarshalJSON(data []byte) error {
	var payload struct {
		Nodes []RegressionNode `json:"nodes"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	dt.nodes = payload.Nodes
	return nil
}
