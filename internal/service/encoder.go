package service

import (
	"strconv"
	"strings"

	"homeprice/internal/model"
)

// FeatureVector is the model input for a single request, ordered like the schema
type FeatureVector []float64

// LocationMatch records whether a location name hit a one-hot slot.
// Unknown locations are not an error: they encode with no slot set.
type LocationMatch struct {
	index   int
	matched bool
}

// Matched returns a match at the given vector index
func Matched(index int) LocationMatch { return LocationMatch{index: index, matched: true} }

// Unmatched returns the result for an unrecognized location
func Unmatched() LocationMatch { return LocationMatch{index: -1} }

// Index returns the vector index of the location slot, if any
func (m LocationMatch) Index() (int, bool) { return m.index, m.matched }

func (m LocationMatch) String() string {
	if !m.matched {
		return "unmatched"
	}
	return "matched(" + strconv.Itoa(m.index) + ")"
}

// Label is the low cardinality form used for metrics
func (m LocationMatch) Label() string {
	if m.matched {
		return "matched"
	}
	return "unmatched"
}

// Encoder turns request attributes into a feature vector for one schema
type Encoder struct {
	width   int
	indexes map[string]int
}

// NewEncoder indexes the location segment of schema
func NewEncoder(schema model.ColumnSchema) *Encoder {
	e := &Encoder{
		width:   len(schema),
		indexes: make(map[string]int, len(schema)),
	}
	for i := model.NumericFeatureCount; i < len(schema); i++ {
		if _, dup := e.indexes[schema[i]]; !dup {
			e.indexes[schema[i]] = i
		}
	}
	return e
}

// Lookup finds the slot for a location, matching case-insensitively
func (e *Encoder) Lookup(location string) LocationMatch {
	if idx, ok := e.indexes[strings.ToLower(location)]; ok {
		return Matched(idx)
	}
	return Unmatched()
}

// Encode builds the vector: numeric features at the fixed leading positions
// and a 1 in the matching location slot when the location is known.
func (e *Encoder) Encode(location string, sqft, bath, bhk float64) (FeatureVector, LocationMatch) {
	x := make(FeatureVector, e.width)
	x[model.IndexTotalSqft] = sqft
	x[model.IndexBath] = bath
	x[model.IndexBHK] = bhk

	match := e.Lookup(location)
	if idx, ok := match.Index(); ok {
		x[idx] = 1
	}
	return x, match
}
