package observer

import (
	"errors"
	"fmt"
)

var (
	ErrUnimplemented    = errors.New("observer: display capability not implemented")
	ErrObserverNotFound = errors.New("observer: observer not registered")
	ErrNoReading        = errors.New("observer: no reading recorded yet")
	ErrUnknownDisplay   = errors.New("observer: unknown display device")
)

type Error struct {
	Op     string
	Device string
	Err    error
}

func (e *Error) Error() string {
	if e.Device != "" {
		return fmt.Sprintf("observer.%s [%s]: %v", e.Op, e.Device, e.Err)
	}
	return fmt.Sprintf("observer.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplemented)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrObserverNotFound)
}
