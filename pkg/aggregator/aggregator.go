// Package aggregator merges the results of several template backends.
//
// Backends are called strictly in order and every backend runs, even after
// an earlier one failed. When any backend fails the failures are combined
// (messages joined, exit statuses summed) and returned instead of a result.
package aggregator

import (
	"context"
	"sort"
	"strings"

	"github.com/arthur-debert/gig/pkg/errors"
	"github.com/arthur-debert/gig/pkg/logging"
	"github.com/arthur-debert/gig/pkg/types"
)

// UniqueMarker prefixes listing entries first seen from a backend other than
// the first one.
const UniqueMarker = "*"

// Aggregator fans operations out to an ordered list of backends
type Aggregator struct {
	backends []types.Backend
}

// New creates an aggregator over backends, kept in the given order
func New(backends ...types.Backend) *Aggregator {
	return &Aggregator{backends: backends}
}

// Len returns the number of backends
func (a *Aggregator) Len() int {
	return len(a.backends)
}

type operation func(ctx context.Context, b types.Backend) (types.QualifiedString, error)

// collect runs op on every backend in order and partitions the outcomes
func (a *Aggregator) collect(ctx context.Context, name string, op operation) ([]types.QualifiedString, error) {
	logger := logging.GetLogger("aggregator")
	done := logging.LogOperationStart(logger, name)
	defer done()

	results := make([]types.QualifiedString, 0, len(a.backends))
	var failures []*errors.ProgramExit
	for i, b := range a.backends {
		result, err := op(ctx, b)
		if err != nil {
			failure := errors.AsProgramExit(err)
			logger.Debug().
				Int("backend", i).
				Int("exitStatus", failure.ExitStatus).
				Msg("Backend failed")
			failures = append(failures, failure)
			continue
		}
		logger.Debug().
			Int("backend", i).
			Str("origin", result.Origin.String()).
			Int("bytes", len(result.Value)).
			Msg("Backend succeeded")
		results = append(results, result)
	}

	if len(failures) > 0 {
		combined := errors.Combine(failures...)
		logger.Info().
			Int("failures", len(failures)).
			Int("exitStatus", combined.ExitStatus).
			Msg("Aggregation failed")
		return nil, combined
	}
	return results, nil
}

// List merges every backend's listing into one sorted listing. Names first
// seen from a backend other than the first are prefixed with UniqueMarker;
// names already seen are dropped.
func (a *Aggregator) List(ctx context.Context) (types.QualifiedString, error) {
	results, err := a.collect(ctx, "list", func(ctx context.Context, b types.Backend) (types.QualifiedString, error) {
		return b.List(ctx)
	})
	if err != nil {
		return types.QualifiedString{}, err
	}
	return types.NewQualifiedString(MergeListings(results), types.OriginMixed), nil
}

// Generate concatenates every backend's output in backend order
func (a *Aggregator) Generate(ctx context.Context, names []string) (types.QualifiedString, error) {
	results, err := a.collect(ctx, "generate", func(ctx context.Context, b types.Backend) (types.QualifiedString, error) {
		return b.Generate(ctx, names)
	})
	if err != nil {
		return types.QualifiedString{}, err
	}
	return types.NewQualifiedString(concat(results), types.OriginMixed), nil
}

// GenerateWithCheck is Generate through each backend's checked variant
func (a *Aggregator) GenerateWithCheck(ctx context.Context, names []string) (types.QualifiedString, error) {
	results, err := a.collect(ctx, "generate-with-check", func(ctx context.Context, b types.Backend) (types.QualifiedString, error) {
		return b.GenerateWithCheck(ctx, names)
	})
	if err != nil {
		return types.QualifiedString{}, err
	}
	return types.NewQualifiedString(concat(results), types.OriginMixed), nil
}

// Execute dispatches a request to the matching operation
func (a *Aggregator) Execute(ctx context.Context, req types.Request) (types.QualifiedString, error) {
	switch {
	case req.List:
		return a.List(ctx)
	case req.Check:
		return a.GenerateWithCheck(ctx, req.Names)
	default:
		return a.Generate(ctx, req.Names)
	}
}

// MergeListings deduplicates and sorts the lines of several listings,
// marking names first contributed by a non-first listing.
func MergeListings(listings []types.QualifiedString) string {
	seen := make(map[string]struct{})
	var entries []string
	for i, listing := range listings {
		for _, line := range strings.Split(listing.Value, "\n") {
			name := strings.TrimSpace(line)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			if i > 0 {
				name = UniqueMarker + name
			}
			entries = append(entries, name)
		}
	}
	sort.Strings(entries)
	return strings.Join(entries, "\n")
}

func concat(results []types.QualifiedString) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.IsEmpty() {
			continue
		}
		parts = append(parts, r.Value)
	}
	return strings.Join(parts, "\n")
}

var _ types.Backend = (*Aggregator)(nil)
