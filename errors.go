package xnd

import (
	"errors"
	"fmt"

	"github.com/robinovitch61/xnd/types"
)

// ErrOutOfMemory is returned when bitmap construction fails to allocate.
// The inner-package error (and the allocator's underlying cause, if any)
// can be accessed via errors.Unwrap.
var ErrOutOfMemory = errors.New("out of memory")

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, types.ErrOutOfMemory) {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	return err
}
