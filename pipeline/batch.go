package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/loader"
	"github.com/teranos/sculpt/logger"
)

// Batch loads and generates every input in parallel. Each run owns its state;
// results come back in input order. The first failure cancels the remaining
// runs and is returned wrapped with the input's path.
func Batch(ctx context.Context, inputs []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := loader.LoadFile(input)
			if err != nil {
				return err
			}
			r, err := Generate(file, opts)
			if err != nil {
				return errors.Wrapf(err, "%s", input)
			}
			r.Input = input
			results[i] = r

			logger.LoggerFromContext(logger.WithInput(ctx, input)).Debugw("input done", logger.FieldRoot, r.Schema.Root)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
