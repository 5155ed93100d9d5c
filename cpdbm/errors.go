package cpdbm

import "errors"

// ErrNilOracleFactory indicates a batch helper was given a nil Oracle
// factory; each goroutine needs its own Oracle context, so there is no
// reasonable default to fall back to.
var ErrNilOracleFactory = errors.New("cpdbm: batch: nil oracle factory")
