package usecase

import (
	"context"

	"shopassist/internal/domain/entity"
)

type generatorCall struct {
	prompt      string
	system      string
	temperature float64
}

// scriptedGenerator plays back canned completions (or errors) in order and
// records every call it receives.
type scriptedGenerator struct {
	responses []string
	errs      []error
	calls     []generatorCall
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt, system string, temperature float64) (string, error) {
	i := len(g.calls)
	g.calls = append(g.calls, generatorCall{prompt: prompt, system: system, temperature: temperature})
	var err error
	if i < len(g.errs) {
		err = g.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", nil
}

type fakeCatalog struct {
	products []entity.Product
	err      error
	calls    int
}

func (c *fakeCatalog) Products(_ context.Context) ([]entity.Product, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.products, nil
}

type fakeLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (l *fakeLimiter) Allow(_ context.Context, _ string) (bool, error) {
	l.calls++
	return l.allowed, l.err
}
