package reltype

import "errors"

// ErrOpposingDirections indicates And was called on two relations facing
// opposing comparison directions (one of LT/LE paired with one of GT/GE),
// a logic error that a well-formed, upper-only PDBM must never trigger;
// every call site in package pdbm is audited in DESIGN.md.
var ErrOpposingDirections = errors.New("reltype: And: opposing comparison directions")
