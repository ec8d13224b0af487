package metrics

import (
	"fmt"
	"strings"

	"github.com/brier-ml/brier/internal/tensor"
)

// ShapeError reports score inputs that are not flat, equal-length vectors.
// It is returned before any computation happens; a score never partially
// evaluates mismatched inputs.
type ShapeError struct {
	Shapes []tensor.Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	parts := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		parts[i] = fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("metrics: inputs must be flat vectors of equal length, got shapes %s",
		strings.Join(parts, ", "))
}
