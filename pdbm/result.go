package pdbm

import "github.com/katalvlaran/ptazone/constraint"

// Result pairs a refined parameter ConstraintSet with the PDBM that holds
// under it — the unit of every split-producing operation.
type Result struct {
	C constraint.ConstraintSet
	D PDBM
}
