package pdbm

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/oracle"
)

// workItem is one pending (C, D) pair awaiting a closure sweep.
type workItem struct {
	c constraint.ConstraintSet
	d PDBM
}

// Canonical runs symbolic Floyd-Warshall closure to a fixed point: for
// every intermediate index k and every i≠j, the candidate path through k
// is compared against the current entry via a coverage constraint, and
// the Oracle's verdict tightens the cell, splits the work pair, or
// abandons the branch. Splits are processed breadth-first through a
// FIFO worklist, re-running the full sweep on each child from scratch,
// and work pairs are deduplicated by structural equality before being
// swept.
//
// Once a pair survives a full sweep with no further tightening, its
// implied diagonal is checked for a negative cycle via IsEmpty; a
// contradictory pair is dropped (emits nothing) rather than returned.
func Canonical(ctx context.Context, c constraint.ConstraintSet, d PDBM, o oracle.Oracle, opts ...DiagOption) ([]Result, error) {
	diag := defaultDiagOptions()
	for _, apply := range opts {
		apply(&diag)
	}

	queue := []workItem{{c: c, d: d}}
	seen := make(map[string]struct{})
	var out []Result

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		key := item.c.String() + "|" + item.d.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		swept, children, empty, err := sweepOnce(ctx, item, o, diag.logger)
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}
		if children != nil {
			queue = append(queue, children...)
			continue
		}

		empty, err = IsEmpty(ctx, swept.c, swept.d, o)
		if err != nil {
			return nil, err
		}
		if empty {
			diag.logger.Printf("pdbm: canonical: dropping %s: contradictory diagonal", swept.c.String())
			continue
		}
		out = append(out, Result{C: swept.c, D: swept.d})
	}
	return out, nil
}

// sweepOnce runs a single k,i,j closure pass over item, mutating a working
// copy of the matrix in place as NO verdicts tighten cells (mirroring the
// teacher's floydWarshallInPlace single-pass accumulation). It stops at
// the first SPLIT (returning two children to requeue) or UNKNOWN
// (returning empty=true, abandoning the branch); a pass that completes
// cleanly returns the tightened item with children==nil.
func sweepOnce(ctx context.Context, item workItem, o oracle.Oracle, logger Logger) (swept workItem, children []workItem, empty bool, err error) {
	n := item.d.N()
	cells := item.d.cloneCells()
	cur := item.d.withCells(cells)

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				ik, kj, ij := cur.at(i, k), cur.at(k, j), cur.at(i, j)
				via := composeVia(ik, kj)

				cov, kappa, covErr := compareCoverage(ctx, ij, via, item.c, o)
				if covErr != nil {
					return workItem{}, nil, false, covErr
				}

				switch cov {
				case oracle.Yes:
					// ij already at least as tight as the via path.
				case oracle.No:
					cells[i*n+j] = via
				case oracle.Split:
					tightenedCells := make([]cell, len(cells))
					copy(tightenedCells, cells)
					tightenedCells[i*n+j] = via
					tightened := cur.withCells(tightenedCells)
					return workItem{}, []workItem{
						{c: item.c.AndConstraint(kappa), d: cur},
						{c: item.c.AndConstraint(kappa.Negate()), d: tightened},
					}, false, nil
				default: // oracle.Unknown
					logger.Printf("pdbm: canonical: pruning branch at (%d,%d): oracle returned UNKNOWN", i, j)
					return workItem{}, nil, true, nil
				}
			}
		}
	}
	return workItem{c: item.c, d: cur}, nil, false, nil
}
