package strategy

import (
	"errors"
	"fmt"
)

var (
	ErrUnimplemented  = errors.New("strategy: payment capability not implemented")
	ErrNoGateway      = errors.New("strategy: no payment gateway bound")
	ErrUnknownGateway = errors.New("strategy: unknown payment gateway")
)

type Error struct {
	Op      string
	Gateway string
	Err     error
}

func (e *Error) Error() string {
	if e.Gateway != "" {
		return fmt.Sprintf("strategy.%s [%s]: %v", e.Op, e.Gateway, e.Err)
	}
	return fmt.Sprintf("strategy.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplemented)
}

func IsUnknownGateway(err error) bool {
	return errors.Is(err, ErrUnknownGateway)
}
