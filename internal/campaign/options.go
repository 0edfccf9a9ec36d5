package campaign

import (
	"errors"
	"fmt"
)

// ErrOptionConflict indicates mutually exclusive presentation options.
var ErrOptionConflict = errors.New("conflicting presentation options")

// ErrNotImplemented indicates a presentation option outside the
// supported default combination.
var ErrNotImplemented = errors.New("not implemented")

// Options is the presentation configuration for a drive loop. Only the
// default combination (all fields false) is supported; anything else
// is rejected before the first case runs.
type Options struct {
	Silent         bool
	SuppressErrors bool
	Verbose        bool
	NoColor        bool
}

// Validate rejects conflicting combinations first, then any option
// outside the supported default set.
func (o Options) Validate() error {
	if o.Silent && o.Verbose {
		return fmt.Errorf("%w: only one of silent and verbose can be set", ErrOptionConflict)
	}
	if o.SuppressErrors && !o.Silent {
		return fmt.Errorf("%w: suppress-errors can only be set with silent", ErrOptionConflict)
	}
	if o.Silent || o.SuppressErrors || o.Verbose || o.NoColor {
		return fmt.Errorf("%w: silent, suppress-errors, verbose and no-color", ErrNotImplemented)
	}
	return nil
}
