package store

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of rebuilding one save. Err is nil when the
// save loads into a valid board.
type Result struct {
	Name   string
	Pieces int
	Err    error
}

// Verify loads every save in st on `threads` workers and reports, in
// List order, whether each one rebuilds into a board.
func Verify(ctx context.Context, st Store, threads int) ([]Result, error) {
	names, err := st.List(ctx)
	if err != nil {
		return nil, err
	}
	if threads < 1 {
		threads = 1
	}
	results := make([]Result, len(names))
	input := make(chan int)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(input)
		for i := range names {
			select {
			case input <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			for i := range input {
				results[i] = verifyOne(ctx, st, names[i])
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func verifyOne(ctx context.Context, st Store, nm string) Result {
	r := Result{Name: nm}
	b, err := LoadBoard(ctx, st, nm)
	if err != nil {
		r.Err = err
		return r
	}
	r.Pieces = len(b.Pieces())
	return r
}

var _ Store = (*DirStore)(nil)
var _ Store = (*SQLStore)(nil)
