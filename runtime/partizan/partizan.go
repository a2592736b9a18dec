// Package partizan provides the generic search driver that derives the
// canonical form of a short partizan game position.
//
// A game module supplies the Game capability; the driver recursively
// values each independent component of a position through a shared
// transposition table and sums the results.
package partizan

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/cgt-lang/cgt/runtime/canonical"
	"github.com/cgt-lang/cgt/runtime/transposition"
)

// Game is the capability a game module must expose to the driver. A
// position must also be hashable and equatable by value, as required by
// the transposition table.
type Game[G any] interface {
	// LeftMoves enumerates the positions Left can move to.
	LeftMoves() []G

	// RightMoves enumerates the positions Right can move to.
	RightMoves() []G

	// Decompositions splits the position into independent components
	// whose disjunctive sum is the position. A game without decomposition
	// returns the position itself.
	Decompositions() []G
}

// CanonicalForm computes the canonical form of g, memoizing every visited
// position in tt. Results do not depend on the table: a NoTable yields
// the identical handle, just slower.
func CanonicalForm[G Game[G]](g G, tt transposition.Cache[G]) *canonical.Form {
	if f, ok := tt.Lookup(g); ok {
		return f
	}

	store := tt.Store()
	acc := store.Zero()
	for _, component := range g.Decompositions() {
		cf, ok := tt.Lookup(component)
		if !ok {
			var m canonical.Moves
			for _, o := range component.LeftMoves() {
				m.Left = append(m.Left, CanonicalForm(o, tt))
			}
			for _, o := range component.RightMoves() {
				m.Right = append(m.Right, CanonicalForm(o, tt))
			}
			cf = store.FromMoves(m)
			tt.Insert(component, cf)
		}
		acc = store.Sum(acc, cf)
	}
	tt.Insert(g, acc)
	return acc
}

// ParallelOptions configures CanonicalFormParallel.
type ParallelOptions struct {
	// Workers caps concurrent component evaluations. Zero means
	// GOMAXPROCS.
	Workers int

	// Logger receives debug traces. Nil disables logging.
	Logger *slog.Logger
}

// CanonicalFormParallel computes the canonical form of g, fanning the
// independent components of the root position out over a worker pool.
// Racing evaluations of one position are collapsed so only one worker
// descends into a shared subtree; recursion below a component is
// sequential, keeping stack depth bounded by the component's birthday.
//
// The result is the same handle CanonicalForm returns. On cancellation
// the context error is returned; partial cache state remains valid.
func CanonicalFormParallel[G Game[G]](ctx context.Context, g G, tt transposition.Cache[G], opts ParallelOptions) (*canonical.Form, error) {
	if f, ok := tt.Lookup(g); ok {
		return f, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	d := &parallelDriver[G]{tt: tt, logger: opts.Logger}
	components := g.Decompositions()
	if d.logger != nil {
		d.logger.Debug("parallel search",
			slog.Int("components", len(components)),
			slog.Int("workers", workers))
	}

	results := make([]*canonical.Form, len(components))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, component := range components {
		eg.Go(func() error {
			f, err := d.component(ctx, component)
			if err != nil {
				return err
			}
			results[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	store := tt.Store()
	acc := store.Zero()
	for _, f := range results {
		acc = store.Sum(acc, f)
	}
	tt.Insert(g, acc)
	return acc, nil
}

type parallelDriver[G Game[G]] struct {
	tt     transposition.Cache[G]
	group  singleflight.Group
	logger *slog.Logger
}

// component values one position, deduplicating racing evaluations of the
// same position across workers.
func (d *parallelDriver[G]) component(ctx context.Context, g G) (*canonical.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f, ok := d.tt.Lookup(g); ok {
		return f, nil
	}

	key := strconv.FormatUint(transposition.Fingerprint(g), 16)
	v, err, _ := d.group.Do(key, func() (interface{}, error) {
		return d.valuePosition(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return v.(*canonical.Form), nil
}

func (d *parallelDriver[G]) valuePosition(ctx context.Context, g G) (*canonical.Form, error) {
	store := d.tt.Store()
	acc := store.Zero()
	for _, component := range g.Decompositions() {
		cf, ok := d.tt.Lookup(component)
		if !ok {
			var m canonical.Moves
			for _, o := range component.LeftMoves() {
				f, err := d.component(ctx, o)
				if err != nil {
					return nil, err
				}
				m.Left = append(m.Left, f)
			}
			for _, o := range component.RightMoves() {
				f, err := d.component(ctx, o)
				if err != nil {
					return nil, err
				}
				m.Right = append(m.Right, f)
			}
			cf = store.FromMoves(m)
			d.tt.Insert(component, cf)
		}
		acc = store.Sum(acc, cf)
	}
	d.tt.Insert(g, acc)
	return acc, nil
}
