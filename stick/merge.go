package stick

import "strconv"

// ShortestPrecision formats energies with the fewest digits that round-trip.
const ShortestPrecision = -1

// Merge combines sets using shortest round-trip formatting as the energy key.
func Merge(sources ...Set) Set {
	return MergeWithPrecision(ShortestPrecision, sources...)
}

// MergeWithPrecision combines sets, comparing energies after formatting them
// with prec decimal places (or [ShortestPrecision]).
//
// The first source is copied unchanged, duplicates included. A stick from a
// later source is appended when no stick accumulated so far, including
// sticks admitted earlier from the same source, has the same key.
func MergeWithPrecision(prec int, sources ...Set) Set {
	if len(sources) == 0 {
		return Set{}
	}

	acc := NewSet(sources[0].sticks...)
	for _, src := range sources[1:] {
		acc = admit(acc, src, prec)
	}

	return acc
}

// admit returns a new set: acc followed by the sticks of src whose energy key
// is not yet accumulated.
func admit(acc, src Set, prec int) Set {
	seen := make(map[string]struct{}, acc.Len()+src.Len())
	for _, st := range acc.sticks {
		seen[energyKey(st.Energy, prec)] = struct{}{}
	}

	out := make([]Stick, 0, acc.Len()+src.Len())
	out = append(out, acc.sticks...)

	for _, st := range src.sticks {
		key := energyKey(st.Energy, prec)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, st)
	}

	return Set{sticks: out}
}

func energyKey(e float64, prec int) string {
	return strconv.FormatFloat(e, 'f', prec, 64)
}
