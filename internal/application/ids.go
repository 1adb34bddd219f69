package application

import "github.com/google/uuid"

// IDGen produces correlation ids attached to each rate lookup's log lines.
type IDGen interface {
	NewID() string
}

type defaultIDGen struct{}

func (defaultIDGen) NewID() string { return uuid.NewString() }
