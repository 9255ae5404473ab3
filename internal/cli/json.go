package cli

import (
	"encoding/json"
	"io"

	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/wheel"
)

// PickResult is the --json output of wheel pick.
type PickResult struct {
	Winner        PickWinner `json:"winner"`
	Index         int        `json:"index"`
	TotalRotation float64    `json:"total_rotation"`
	DisplayAngle  float64    `json:"display_angle"`
}

// PickWinner is the selected option.
type PickWinner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ErrCodeUnknown is used for errors that aren't *errors.Error.
const ErrCodeUnknown = "UNKNOWN"

// newPickResult builds the JSON result for a finished spin.
func newPickResult(winner wheel.Option, plan wheel.Plan, display float64) PickResult {
	return PickResult{
		Winner: PickWinner{
			ID:    winner.ID,
			Name:  winner.Name,
			Color: winner.Color,
		},
		Index:         plan.WinningIndex,
		TotalRotation: plan.TotalRotation,
		DisplayAngle:  display,
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONFromError writes {"error": {...}} for err.
func WriteJSONFromError(w io.Writer, err error) error {
	return WriteJSON(w, struct {
		Error *JSONError `json:"error"`
	}{ErrorToJSON(err)})
}

// ErrorToJSON converts a Go error to a JSONError.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if wErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       wErr.Code,
			Message:    wErr.Message,
			Suggestion: wErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}
