package domain

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// Outcome is the result of a single provider fetch: either a rate or the
// reason the provider could not supply one. Failures always match
// ErrProviderUnavailable.
type Outcome struct {
	res mo.Result[Rate]
}

func Success(r Rate) Outcome { return Outcome{res: mo.Ok(r)} }

func Unavailable(reason error) Outcome {
	switch {
	case reason == nil:
		reason = ErrProviderUnavailable
	case !errors.Is(reason, ErrProviderUnavailable):
		reason = fmt.Errorf("%w: %w", ErrProviderUnavailable, reason)
	}
	return Outcome{res: mo.Err[Rate](reason)}
}

func Unavailablef(format string, args ...any) Outcome {
	return Unavailable(fmt.Errorf(format, args...))
}

// Available is false for the zero Outcome as well as for Unavailable.
func (o Outcome) Available() bool { return o.res.IsOk() && !o.res.MustGet().IsZero() }

func (o Outcome) Rate() Rate { return o.res.OrEmpty() }

// Err returns nil on success.
func (o Outcome) Err() error {
	if o.Available() {
		return nil
	}
	if err := o.res.Error(); err != nil {
		return err
	}
	return ErrProviderUnavailable
}

// Result exposes the underlying mo.Result.
func (o Outcome) Result() mo.Result[Rate] {
	if !o.Available() {
		return mo.Err[Rate](o.Err())
	}
	return o.res
}
