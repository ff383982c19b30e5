package scoring

import (
	"errors"
	"fmt"
)

// Error kinds reported to the dashboard alongside the message.
const (
	KindMissingField = "missing_field"
	KindZeroWeight   = "zero_weight"
	KindNotFound     = "not_found"
)

// MissingFieldError is returned when an initiative row lacks one of the four scores.
type MissingFieldError struct {
	Row        int
	Initiative string
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("initiative %q (row %d): missing field %q", e.Initiative, e.Row+1, e.Field)
}

// ZeroWeightError is returned when every raw weight is zero and the policy rejects it.
type ZeroWeightError struct {
	Raw WeightSet
}

func (e *ZeroWeightError) Error() string {
	return "all criteria weights are zero, at least one must be positive"
}

// NotFoundError is returned when the selected initiative is not in the ranking.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("initiative %q not found", e.Name)
}

// Kind classifies err into one of the dashboard error kinds, or "" when it is
// not a scoring error.
func Kind(err error) string {
	var mf *MissingFieldError
	var zw *ZeroWeightError
	var nf *NotFoundError
	switch {
	case errors.As(err, &mf):
		return KindMissingField
	case errors.As(err, &zw):
		return KindZeroWeight
	case errors.As(err, &nf):
		return KindNotFound
	default:
		return ""
	}
}
