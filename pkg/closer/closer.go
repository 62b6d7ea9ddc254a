// Package closer registra los recursos de proceso (pool de BD, servidor HTTP, archivo de log)
// y los cierra en orden inverso al apagar la aplicación.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Func función de cierre de un recurso.
type Func func(ctx context.Context) error

type entry struct {
	name string
	fn   Func
}

// Closer cierra recursos en orden LIFO. Es seguro para uso concurrente y Close solo corre una vez.
type Closer struct {
	mu      sync.Mutex
	once    sync.Once
	entries []entry
}

// New construye un Closer vacío.
func New() *Closer {
	return &Closer{}
}

// Add registra un recurso. name aparece en el error si su cierre falla.
func (c *Closer) Add(name string, fn Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: fn})
}

// Close cierra todos los recursos del último al primero. Si ctx vence, los recursos que
// faltan se reportan como no cerrados.
func (c *Closer) Close(ctx context.Context) error {
	var errs []error
	c.once.Do(func() {
		c.mu.Lock()
		entries := c.entries
		c.mu.Unlock()

		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			done := make(chan error, 1)
			go func() { done <- e.fn(ctx) }()

			select {
			case err := <-done:
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
				}
			case <-ctx.Done():
				for j := i; j >= 0; j-- {
					errs = append(errs, fmt.Errorf("%s: cierre interrumpido: %w", entries[j].name, ctx.Err()))
				}
				return
			}
		}
	})
	return errors.Join(errs...)
}
