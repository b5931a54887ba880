// Package exact implements the SMT/SAT-based exact placer and router: for a
// logic network, a clocking scheme, and a tile budget, it searches
// increasing rectangular grid sizes for the smallest one on which the
// network can be placed and routed, using a boolean satisfiability encoding
// (constraint families tv/te/tc/tp/vcl/tcl/tl) solved by
// github.com/irifrance/gini.
//
// Run owns one size/factor-pair search loop. Each round builds a fresh
// variable set and circuit, hands it to a pool of workers (see pool.go),
// and stops at the first SAT result; UNSAT pops the round and the search
// continues at the next factor pair, then the next size, until the budget
// (tile count or wall-clock) is exhausted.
package exact
