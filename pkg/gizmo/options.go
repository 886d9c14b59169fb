package gizmo

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Gizmo.
type Option func(*Gizmo)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Gizmo) {
		if log != nil {
			g.log = log
		}
	}
}

// WithID sets the instance id used to tag log lines. By default a random
// id is generated.
func WithID(id uuid.UUID) Option {
	return func(g *Gizmo) {
		g.id = id
	}
}
