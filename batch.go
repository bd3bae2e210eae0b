// SPDX-License-Identifier: MIT
package dataquery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/dataquery/lexer"
)

type (
	// Result holds the outcome of compiling one source in CompileAll.
	Result struct {
		Err        error
		Source     string
		Operations lexer.LexicalOperations
	}
)

// Batch compilation errors.
var (
	ErrPool = errors.New("compile pool failure")
)

// CompileAll compiles independent path expressions concurrently.
//
// results[i] holds the outcome for sources[i]; lexing failures are reported per Result. The
// returned error is limited to pool failures & context cancelation, in which case results holds
// the compilations completed so far.
func CompileAll(ctx context.Context, cfg *Config, sources ...string) (results []Result, err error) {
	cfg.Validate()

	results = make([]Result, len(sources))
	if len(sources) < 1 {
		return
	}

	workers := cfg.Workers
	if workers > len(sources) {
		workers = len(sources)
	}

	pool, err := ants.NewPool(workers, ants.WithLogger(cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPool, err)
		return
	}
	defer pool.Release()

	opts := cfg.options()
	wg := new(sync.WaitGroup)

	for index := range sources {
		select {
		case <-ctx.Done():
			wg.Wait()
			err = ctx.Err()

			return
		default:
		}

		index := index
		wg.Add(1)

		if sErr := pool.Submit(func() {
			defer wg.Done()

			ops, lErr := lexer.Compile(sources[index], opts...)
			results[index] = Result{Source: sources[index], Operations: ops, Err: lErr}
		}); sErr != nil {
			wg.Done()
			wg.Wait()
			err = fmt.Errorf("%w: %v", ErrPool, sErr)

			return
		}
	}
	wg.Wait()

	if cfg.Debug {
		cfg.Logger.Debugf("compiled %d sources on %d workers", len(sources), workers)
	}

	return
}
