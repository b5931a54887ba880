package network

// Validate checks the network's structural invariants: every
// live vertex's in-degree matches its operation's arity, and every live
// F1O2/F1O3 vertex's out-degree matches its fixed fan-out count. It returns
// the first violation found as an *ArityError, or nil if none.
func (n *Network) Validate() error {
	for _, v := range n.vertices {
		if v == nil || v.removed {
			continue
		}
		if want := v.Op.Arity(); want >= 0 && len(v.in) != want {
			return &ArityError{Op: v.Op, Expected: want, Got: len(v.in)}
		}
		if want := v.Op.FanoutCount(); want > 0 && len(v.out) != want {
			return &ArityError{Op: v.Op, Expected: want, Got: len(v.out)}
		}
	}
	return nil
}

// IsNormalForm reports whether every live vertex other than F1O2/F1O3 has
// out-degree <= 1 and no live XOR vertex remains — i.e. Substitute has
// reached its fixpoint.
func (n *Network) IsNormalForm() bool {
	for _, v := range n.vertices {
		if v == nil || v.removed {
			continue
		}
		if v.Op == Xor {
			return false
		}
		if v.Op != F1O2 && v.Op != F1O3 && len(v.out) > 1 {
			return false
		}
	}
	return true
}
