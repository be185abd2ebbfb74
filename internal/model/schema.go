package model

// NumericFeatureCount is the number of leading numeric columns in a schema:
// square footage, bathroom count and bedroom count, in that order.
const NumericFeatureCount = 3

// Fixed positions of the numeric features inside a feature vector
const (
	IndexTotalSqft = 0
	IndexBath      = 1
	IndexBHK       = 2
)

// ColumnSchema is the ordered list of every feature dimension the model
// expects: the numeric features followed by one lowercase name per location.
type ColumnSchema []string

// ColumnsFile is the on-disk shape of the schema artifact
type ColumnsFile struct {
	DataColumns []string `json:"data_columns"`
}

// Locations returns a copy of the one-hot location segment of the schema
func (s ColumnSchema) Locations() []string {
	if len(s) <= NumericFeatureCount {
		return []string{}
	}
	locations := make([]string, len(s)-NumericFeatureCount)
	copy(locations, s[NumericFeatureCount:])
	return locations
}

// Clone returns an independent copy of the schema
func (s ColumnSchema) Clone() ColumnSchema {
	if s == nil {
		return nil
	}
	c := make(ColumnSchema, len(s))
	copy(c, s)
	return c
}
