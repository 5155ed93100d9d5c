package pdbm

import (
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// Delay lets time elapse: every non-zero clock's upper bound against x0
// is relaxed to < +∞, since letting time pass raises all
// clocks uniformly and only invalidates individual-clock upper bounds.
// Inter-clock bounds are unaffected. Delay is pure and does not consult an
// Oracle; the caller must re-run Canonical on the result.
func Delay(d PDBM) PDBM {
	n := d.N()
	cells := d.cloneCells()
	inf := cell{expr: linexpr.OfConst(rational.Inf()), rel: reltype.LT}
	for i := 1; i < n; i++ {
		cells[i*n+0] = inf
	}
	return d.withCells(cells)
}
