package pdbm

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// cell is the internal per-entry representation: the bound on row-col is
// implied entirely by matrix position, so only the expression and relation
// need to be stored.
type cell struct {
	expr linexpr.LinearExpression
	rel  reltype.RelationType // always LT or LE
}

// PDBM is an immutable n×n matrix of upper-bound clock-difference
// constraints. The zero value is not valid; construct with Initial.
type PDBM struct {
	clocks []ident.Clock       // clocks[0] is always ident.Zero()
	index  map[ident.Clock]int // clock -> row/column index
	cells  []cell              // row-major, len == len(clocks)*len(clocks)
}

// Option configures Initial. The only current knob is the clock ordering
// rule; functional options are used even though only one option exists
// today, so future knobs (e.g. a custom clock comparator) do not break
// callers.
type Option func(*options)

type options struct {
	order func(a, b ident.Clock) bool
}

func defaultOptions() options {
	return options{order: ident.Clock.Less}
}

// WithClockOrder overrides the stable ordering used to assign matrix
// indices to non-zero clocks. The default is identity order
// (ident.Clock.Less).
func WithClockOrder(less func(a, b ident.Clock) bool) Option {
	return func(o *options) { o.order = less }
}

// Initial builds the zone "every clock is non-negative" over clocks plus
// the implicit zero clock: diagonal (0,≤); D[0][i] = (0,≤) encoding
// cᵢ ≥ 0; every other off-diagonal entry ≤ +∞. Panics
// (ErrNoClocks) if clocks is empty, (ErrDuplicateClock) if a clock repeats,
// and never accepts ident.Zero() in clocks — it is always implicit at
// index 0.
func Initial(clocks []ident.Clock, opts ...Option) PDBM {
	if len(clocks) == 0 {
		panic(ErrNoClocks)
	}
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	ordered := make([]ident.Clock, 0, len(clocks))
	for _, c := range clocks {
		if c.IsZero() {
			continue // the zero clock is always implicit at index 0
		}
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return o.order(ordered[i], ordered[j]) })

	all := make([]ident.Clock, 0, len(ordered)+1)
	all = append(all, ident.Zero())
	all = append(all, ordered...)

	index := make(map[ident.Clock]int, len(all))
	for i, c := range all {
		if _, dup := index[c]; dup {
			panic(ErrDuplicateClock)
		}
		index[c] = i
	}

	n := len(all)
	cells := make([]cell, n*n)
	leZero := cell{expr: linexpr.OfConst(rational.Zero()), rel: reltype.LE}
	leInf := cell{expr: linexpr.OfConst(rational.Inf()), rel: reltype.LE}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				cells[i*n+j] = leZero
			case i == 0:
				cells[i*n+j] = leZero // x0 - ci <= 0, i.e. ci >= 0
			default:
				cells[i*n+j] = leInf
			}
		}
	}

	return PDBM{clocks: all, index: index, cells: cells}
}

// Clocks returns the matrix's clocks in index order (index 0 is always
// ident.Zero()). The returned slice must not be mutated.
func (d PDBM) Clocks() []ident.Clock { return d.clocks }

// N returns the matrix dimension (number of tracked clocks, including x0).
func (d PDBM) N() int { return len(d.clocks) }

// IndexOf returns the matrix index of c and whether c is tracked by d.
func (d PDBM) IndexOf(c ident.Clock) (int, bool) {
	i, ok := d.index[c]
	return i, ok
}

// Bound returns the guard.Bound view of cell (row, col) for the tracked
// clocks at those indices. Panics if row or col is out of range.
func (d PDBM) Bound(row, col int) guard.Bound {
	n := d.N()
	if row < 0 || row >= n || col < 0 || col >= n {
		panic("pdbm: Bound: index out of range")
	}
	c := d.cells[row*n+col]
	return guard.Bound{Row: d.clocks[row], Col: d.clocks[col], Expr: c.expr, Rel: c.rel}
}

// at and withCells are unexported helpers used by the operation files to read
// and copy-on-write a cell by raw index.
func (d PDBM) at(i, j int) cell {
	return d.cells[i*d.N()+j]
}

// withCells returns a copy of d whose cells slice is newCells; clocks and
// index are shared since operations never change the clock set.
func (d PDBM) withCells(newCells []cell) PDBM {
	return PDBM{clocks: d.clocks, index: d.index, cells: newCells}
}

// cloneCells returns a fresh copy of d's cell slice, for operations that
// mutate a working copy before wrapping it back into an immutable PDBM.
func (d PDBM) cloneCells() []cell {
	out := make([]cell, len(d.cells))
	copy(out, d.cells)
	return out
}

// Equal reports structural equality: same clock set in the same order, and
// identical cells.
func (d PDBM) Equal(e PDBM) bool {
	if len(d.clocks) != len(e.clocks) {
		return false
	}
	for i := range d.clocks {
		if d.clocks[i] != e.clocks[i] {
			return false
		}
	}
	for i := range d.cells {
		if d.cells[i].rel != e.cells[i].rel || !d.cells[i].expr.Equal(e.cells[i].expr) {
			return false
		}
	}
	return true
}

// String renders d as a row-major list of "row,col: expr rel" entries,
// skipping trivial (0,≤) diagonal cells, for debugging and dedup keys.
func (d PDBM) String() string {
	n := d.N()
	var b strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			c := d.cells[i*n+j]
			b.WriteString(d.clocks[i].String())
			b.WriteByte(',')
			b.WriteString(d.clocks[j].String())
			b.WriteString(": ")
			b.WriteString(c.rel.String())
			b.WriteByte(' ')
			b.WriteString(c.expr.String())
			b.WriteByte(';')
		}
	}
	return b.String()
}
