package pdb

import "errors"

var (
	// ErrNilSolver is returned by Build when the solver argument is nil.
	ErrNilSolver = errors.New("pdb: solver is nil")
	// ErrBadThreadCount is returned by Build when nThread is not positive.
	ErrBadThreadCount = errors.New("pdb: nThread must be positive")
	// ErrGridSizeMismatch is returned by Build when solver.Grid() is nil
	// or its size does not equal solver.NState().
	ErrGridSizeMismatch = errors.New("pdb: solver.Grid() size does not match solver.NState()")
)
