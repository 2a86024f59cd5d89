package layout

import (
	"errors"
	"fmt"

	"github.com/piwi3910/tagcloud/internal/model"
)

// ErrSearchExhausted is matched by every *ExhaustedError.
var ErrSearchExhausted = errors.New("placement search exhausted")

// ExhaustedError reports that no free slot was found for one rectangle
// within the configured number of spiral points. The layout session stays
// usable; the caller decides whether to skip the label or abort.
type ExhaustedError struct {
	Size       model.Size
	Iterations int
	Radius     float64
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no free slot for %s after %d points (radius %.1f)", e.Size, e.Iterations, e.Radius)
}

// Is makes errors.Is(err, ErrSearchExhausted) succeed.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrSearchExhausted
}
