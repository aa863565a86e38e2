// Package orchestrator runs checks and updates across the configured
// managers.
//
// Managers are processed one at a time in declaration order. Package
// managers take exclusive locks on shared system state, so nothing here
// runs concurrently. A manager that panics is contained: its check maps
// to (false, 0) and its update to a synthetic failed result, and the
// batch carries on. The only error an operation returns is cancellation
// of the caller's context, in which case partial results are dropped.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/arthur-debert/swman/pkg/managers"
	"github.com/arthur-debert/swman/pkg/registry"
	"github.com/arthur-debert/swman/pkg/types"
	"github.com/rs/zerolog"
)

// Operation names attached to log lines
const (
	OpAvailable = "available"
	OpCheck     = "check"
	OpUpdate    = "update"
)

// Orchestrator holds the fixed, ordered manager list
type Orchestrator struct {
	managers registry.Registry[managers.Manager]
}

// New creates an orchestrator over ms, kept in the given order.
// Duplicate names are rejected.
func New(ms ...managers.Manager) (*Orchestrator, error) {
	reg := registry.New[managers.Manager]()
	for _, m := range ms {
		if err := reg.Register(m.Name(), m); err != nil {
			return nil, err
		}
	}
	return &Orchestrator{managers: reg}, nil
}

// Managers lists every registered manager regardless of availability
func (o *Orchestrator) Managers() []managers.Manager {
	return o.managers.Values()
}

// Available probes every manager and returns the installed ones in
// declaration order. Nothing is cached between calls.
func (o *Orchestrator) Available(ctx context.Context) []managers.Manager {
	return o.available(ctx, o.Managers())
}

func (o *Orchestrator) available(ctx context.Context, candidates []managers.Manager) []managers.Manager {
	var out []managers.Manager
	for _, m := range candidates {
		if ctx.Err() != nil {
			return out
		}
		if o.probe(ctx, m) {
			out = append(out, m)
		}
	}
	return out
}

// Probe reports one manager's availability, logging probe errors
func (o *Orchestrator) Probe(ctx context.Context, m managers.Manager) bool {
	return o.probe(ctx, m)
}

func (o *Orchestrator) probe(ctx context.Context, m managers.Manager) (ok bool) {
	ctx, logger := scoped(ctx, m, OpAvailable)
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Availability probe panicked, treating as unavailable")
			ok = false
		}
	}()

	ok, err := m.Available(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Availability probe failed, treating as unavailable")
		return false
	}
	logger.Debug().Bool("available", ok).Msg("Probed manager")
	return ok
}

// CheckAll queries pending updates for every available manager
func (o *Orchestrator) CheckAll(ctx context.Context) (*types.CheckResults, error) {
	logger := zerolog.Ctx(ctx)
	available := o.Available(ctx)
	if err := interrupted(ctx); err != nil {
		return nil, err
	}

	results := types.NewCheckResults()
	for _, m := range available {
		res := o.check(ctx, m)
		if err := interrupted(ctx); err != nil {
			return nil, err
		}
		results.Set(m.Name(), res)
	}

	logger.Info().
		Int("managers", results.Len()).
		Int("totalUpdates", results.TotalUpdates()).
		Strs("indeterminate", results.Indeterminate()).
		Msg("Check completed")
	return results, nil
}

func (o *Orchestrator) check(ctx context.Context, m managers.Manager) (res types.CheckResult) {
	ctx, logger := scoped(ctx, m, OpCheck)
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Check panicked")
			res = types.NoUpdates()
		}
	}()

	res = m.Check(ctx)
	logger.Debug().Str("result", res.String()).Msg("Checked manager")
	return res
}

// UpdateByKind updates the available managers of one kind
func (o *Orchestrator) UpdateByKind(ctx context.Context, kind types.Kind, dryRun bool) ([]types.UpdateResult, error) {
	return o.UpdateByKinds(ctx, dryRun, kind)
}

// UpdateByKinds updates the available managers whose kind is any of kinds
func (o *Orchestrator) UpdateByKinds(ctx context.Context, dryRun bool, kinds ...types.Kind) ([]types.UpdateResult, error) {
	want := make(map[types.Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	var candidates []managers.Manager
	for _, m := range o.Managers() {
		if want[m.Kind()] {
			candidates = append(candidates, m)
		}
	}
	return o.update(ctx, candidates, dryRun)
}

// UpdateAll updates every available manager
func (o *Orchestrator) UpdateAll(ctx context.Context, dryRun bool) ([]types.UpdateResult, error) {
	return o.update(ctx, o.Managers(), dryRun)
}

func (o *Orchestrator) update(ctx context.Context, candidates []managers.Manager, dryRun bool) ([]types.UpdateResult, error) {
	logger := zerolog.Ctx(ctx)
	available := o.available(ctx, candidates)
	if err := interrupted(ctx); err != nil {
		return nil, err
	}

	results := make([]types.UpdateResult, 0, len(available))
	for _, m := range available {
		res := o.updateOne(ctx, m, dryRun)
		if err := interrupted(ctx); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	summary := types.Summarize(results)
	logger.Info().
		Bool("dryRun", dryRun).
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("Update completed")
	return results, nil
}

func (o *Orchestrator) updateOne(ctx context.Context, m managers.Manager, dryRun bool) (res types.UpdateResult) {
	ctx, logger := scoped(ctx, m, OpUpdate)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Update panicked")
			res = types.Failed(m.Name(), fmt.Sprintf("unexpected error: %v", r), time.Since(start))
		}
	}()

	logger.Info().Bool("dryRun", dryRun).Msg("Updating")
	res = m.Update(ctx, dryRun)
	if res.Name == "" {
		res.Name = m.Name()
	}
	logger.Debug().
		Str("status", string(res.Status)).
		Dur("duration", res.Duration).
		Msg("Manager finished")
	return res
}

// scoped enriches the context logger with the manager and operation
func scoped(ctx context.Context, m managers.Manager, op string) (context.Context, *zerolog.Logger) {
	logger := zerolog.Ctx(ctx).With().
		Str("manager", m.Name()).
		Str("operation", op).
		Logger()
	return logger.WithContext(ctx), &logger
}

func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInterrupted, "operation interrupted")
	}
	return nil
}
