package request

import "errors"

var (
	// ErrInvalidRequest marks a semantic precondition failure.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSourceRead marks a source file that passed the existence check but
	// could not be read afterwards.
	ErrSourceRead = errors.New("source read failure")
)
