package service

import (
	"context"
	"errors"
	"fmt"
)

// Service is a background part of the app started and stopped with it.
type Service interface {
	Run()
	Shutdown(ctx context.Context) error
}

// Group is a container for managing a bunch of services.
type Group struct {
	list []Service
}

func (g *Group) Add(services ...Service) { g.list = append(g.list, services...) }

// Start starts each service in the group.
func (g *Group) Start() {
	for _, s := range g.list {
		s.Run()
	}
}

// Shutdown terminates the group in reverse order of addition.
func (g *Group) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(g.list) - 1; i >= 0; i-- {
		s := g.list[i]
		if err := s.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, fmt.Errorf("failed to stop [%v]: %w", s, err))
		}
	}
	return errors.Join(errs...)
}
