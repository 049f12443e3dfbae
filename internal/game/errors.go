// internal/game/errors.go
package game

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why an action was rejected. Kinds are stable
// strings so the transport layer can forward them to clients verbatim.
type ErrorKind string

const (
	ErrInvalidNumberFormat ErrorKind = "InvalidNumberFormat"
	ErrTurnOrderViolation  ErrorKind = "TurnOrderViolation"
	ErrInvalidPlay         ErrorKind = "InvalidPlay"
	ErrMissingChosenSuit   ErrorKind = "MissingChosenSuit"
	ErrDrawLimitExceeded   ErrorKind = "DrawLimitExceeded"
	ErrDeckExhausted       ErrorKind = "DeckExhausted"
	ErrGameAlreadyOver     ErrorKind = "GameAlreadyOver"
)

// GameError is a synchronous rejection of a single submitted action.
// The session state is untouched when one is returned.
type GameError struct {
	Kind    ErrorKind
	Message string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newGameError(kind ErrorKind, format string, args ...interface{}) *GameError {
	return &GameError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from an engine error, or "" for nil or
// foreign errors.
func KindOf(err error) ErrorKind {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}
