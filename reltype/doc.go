// Package reltype defines RelationType, the four strict and non-strict
// clock-difference comparisons used throughout the PDBM engine: LT (<),
// LE (≤), GT (>), and GE (≥).
package reltype
