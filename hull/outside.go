package hull

// outsideSet tracks, in ascending order, the indices of points not yet known
// to lie inside the hull. Points only ever leave the set: once a point is
// enclosed it can never become outside again.
type outsideSet struct {
	indices []int
}

// reset refills the set with every index in [0, n).
func (s *outsideSet) reset(n int) {
	s.indices = s.indices[:0]
	for i := 0; i < n; i++ {
		s.indices = append(s.indices, i)
	}
}

func (s *outsideSet) len() int {
	return len(s.indices)
}

// remove drops every index listed in drop, filtering in place. drop must be
// sorted ascending; duplicates are tolerated.
func (s *outsideSet) remove(drop []int) {
	if len(drop) == 0 {
		return
	}

	kept := s.indices[:0]
	di := 0
	for _, idx := range s.indices {
		for di < len(drop) && drop[di] < idx {
			di++
		}
		if di < len(drop) && drop[di] == idx {
			continue
		}
		kept = append(kept, idx)
	}
	s.indices = kept
}
