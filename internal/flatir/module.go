package flatir

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

type config struct {
	parallelism int
}

// Option configures CompileModule.
type Option func(*config)

// WithParallelism limits the number of functions lowered concurrently. Values lower than one mean
// runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(c *config) {
		c.parallelism = n
	}
}

// CompileModule lowers every function defined in the module. The result at index i is the lowering of
// the function m.Codes[i], whose function index is i plus the number of imported functions.
//
// Functions are lowered concurrently by independent compilers. The first failure cancels the lowering of
// the functions not yet started, and is returned as a *FunctionError.
func CompileModule(ctx context.Context, m *wasm.Module, opts ...Option) ([]*CompilationResult, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.parallelism < 1 {
		cfg.parallelism = runtime.GOMAXPROCS(0)
	}

	meta, err := m.Metadata()
	if err != nil {
		return nil, err
	}

	results := make([]*CompilationResult, len(m.Codes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for i, body := range m.Codes {
		i, body := i, body
		funcIndex := meta.ImportedFunctionCount + uint32(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compile(meta, funcIndex, body)
			if err != nil {
				return &FunctionError{Index: funcIndex, Err: err}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
