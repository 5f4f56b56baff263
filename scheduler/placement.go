package scheduler

import "math/rand/v2"

// Placer chooses base addresses for successive warriors so that no
// warrior's code overlaps another's and every pair of bases keeps at
// least MinDistance of separation, deterministically from a seed
// (spec.md §4.6). No PRNG library appears anywhere in the retrieved
// pack (see DESIGN.md), so this uses the standard library's
// math/rand/v2.
type Placer struct {
	coreSize    int
	minDistance int
	rng         *rand.Rand
	bases       []int
	lengths     []int
}

// NewPlacer creates a Placer for a core of the given size, enforcing
// minDistance separation, seeded for reproducible rounds.
func NewPlacer(coreSize, minDistance int, seed uint64) *Placer {
	return &Placer{
		coreSize:    coreSize,
		minDistance: minDistance,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Place returns a base address for a program of the given length, at
// least MinDistance away (by circular separation) from every base
// returned so far. MinDistance defaulting to MAXLENGTH keeps
// footprints from ever overlapping as long as no program exceeds it.
func (p *Placer) Place(length int) int {
	for attempt := 0; attempt < 10000; attempt++ {
		base := p.rng.IntN(p.coreSize)
		if p.fits(base, length) {
			p.bases = append(p.bases, base)
			p.lengths = append(p.lengths, length)
			return base
		}
	}
	for base := 0; base < p.coreSize; base++ {
		if p.fits(base, length) {
			p.bases = append(p.bases, base)
			p.lengths = append(p.lengths, length)
			return base
		}
	}
	panic("scheduler: no placement satisfies MinDistance")
}

func (p *Placer) fits(base, length int) bool {
	for i, other := range p.bases {
		if separation(base, other, p.coreSize) < p.minDistance {
			return false
		}
		if footprintsOverlap(base, length, other, p.lengths[i], p.coreSize) {
			return false
		}
	}
	return true
}

// footprintsOverlap reports whether the two circular intervals
// [a, a+aLen) and [b, b+bLen) share any address modulo size.
func footprintsOverlap(a, aLen, b, bLen, size int) bool {
	for i := 0; i < aLen; i++ {
		ai := (a + i) % size
		d := ai - b
		if d < 0 {
			d += size
		}
		if d < bLen {
			return true
		}
	}
	return false
}

func separation(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= size
	if d > size-d {
		d = size - d
	}
	return d
}
