package handler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"homeprice/internal/model"
	"homeprice/internal/utils"
)

// ValidationError lists every missing and every invalid request field
type ValidationError struct {
	Missing []string
	Invalid map[string]string
	Cause   error // set when the body itself could not be parsed
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return "Invalid request: " + e.Cause.Error()
	}

	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		fields := make([]string, 0, len(e.Invalid))
		for f := range e.Invalid {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for i, f := range fields {
			fields[i] = f + " " + e.Invalid[f]
		}
		parts = append(parts, "Invalid fields: "+strings.Join(fields, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// parsePredictRequest extracts and coerces the prediction fields from a
// JSON body. It reports all problems at once rather than the first one.
func parsePredictRequest(body []byte) (*model.PredictRequest, error) {
	obj, err := utils.ParseObject(body)
	if err != nil {
		return nil, &ValidationError{Cause: err}
	}

	verr := &ValidationError{Invalid: map[string]string{}}
	for _, field := range model.RequiredPredictFields {
		if _, ok := obj[field]; !ok {
			verr.Missing = append(verr.Missing, field)
		}
	}
	if len(verr.Missing) > 0 {
		return nil, verr
	}

	req := &model.PredictRequest{}
	check := func(field string, err error) {
		if err != nil {
			verr.Invalid[field] = err.Error()
		}
	}

	req.TotalSqft, err = utils.CoerceFloat(obj[model.FieldTotalSqft])
	check(model.FieldTotalSqft, err)
	req.BHK, err = utils.CoerceInt(obj[model.FieldBHK])
	check(model.FieldBHK, err)
	req.Bath, err = utils.CoerceInt(obj[model.FieldBath])
	check(model.FieldBath, err)
	req.Location, err = utils.CoerceString(obj[model.FieldLocation])
	check(model.FieldLocation, err)

	if len(verr.Invalid) > 0 {
		return nil, verr
	}
	return req, nil
}

// describeBody is used in debug logs for rejected requests
func describeBody(body []byte) string {
	if !json.Valid(body) {
		return fmt.Sprintf("<%d bytes, not JSON>", len(body))
	}
	if len(body) > 256 {
		return string(body[:256]) + "..."
	}
	return string(body)
}
