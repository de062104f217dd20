package hull

// None marks an empty index slot. Vertex and face ids are always
// non-negative, so None compares unequal to every real id.
const None = -1

// IndexPair is a pair of indices with explicit empty slots. It serves two
// roles: as a directed edge it holds two vertex ids in winding order, and as
// an edge-map value it holds the ids of up to two faces bordering that edge.
type IndexPair struct {
	P, Q int
}

// PairUnset is the pair with both slots empty. The zero value of IndexPair
// is NOT empty (it names index 0 twice); always start from PairUnset.
var PairUnset = IndexPair{P: None, Q: None}

// Contains reports whether v occupies one of the two slots.
func (ip IndexPair) Contains(v int) bool {
	return ip.P == v || ip.Q == v
}

// Empty reports whether both slots are empty.
func (ip IndexPair) Empty() bool {
	return ip.P == None && ip.Q == None
}

// Add stores v in the first empty slot. It reports false when both slots are
// already occupied, which is how edge over-sharing surfaces.
func (ip *IndexPair) Add(v int) bool {
	switch {
	case ip.P == None:
		ip.P = v
	case ip.Q == None:
		ip.Q = v
	default:
		return false
	}
	return true
}

// Unset clears whichever slot holds v. Clearing a value that is not present
// is a no-op.
func (ip *IndexPair) Unset(v int) {
	switch {
	case ip.P == v:
		ip.P = None
	case ip.Q == v:
		ip.Q = None
	}
}

// Canonical returns the pair with its slots ordered low-to-high. Edges are
// keyed in this form so the two faces sharing an edge land on the same map
// entry no matter which direction each traverses it.
func (ip IndexPair) Canonical() IndexPair {
	if ip.Q < ip.P {
		return IndexPair{P: ip.Q, Q: ip.P}
	}
	return ip
}
