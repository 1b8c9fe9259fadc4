package kdtree

// Partition performs one partition-exchange pass over points[l..r] (inclusive)
// on coordinate d and returns the final index p of the pivot. Afterwards every
// element before p has coordinate d <= the pivot's and every element after p
// has coordinate d >= the pivot's. Equal keys may land on either side.
//
// The middle element of the range is used as pivot. An empty or out-of-bounds
// range leaves points untouched and returns -1.
func Partition(points []Point, l, r, d int) int {
	if !validRange(len(points), l, r) {
		return -1
	}
	return partition(points, l, r, axisKey(d))
}

// SortRange orders points[l..r] (inclusive) by coordinate d by applying
// Partition recursively to both sides of each pivot. Afterwards the element at
// the midpoint of the range is the median along d. An invalid range is a no-op.
func SortRange(points []Point, l, r, d int) {
	sortRange(points, l, r, axisKey(d))
}

func axisKey(d int) func(Point) float64 {
	return func(p Point) float64 { return p[d] }
}

func validRange(n, l, r int) bool {
	return l >= 0 && r < n && l <= r
}

// partition is a Hoare-style hole-filling partition around s[mid].
func partition[E any](s []E, l, r int, key func(E) float64) int {
	if l == r {
		return l
	}
	mid := l + (r-l)/2
	s[l], s[mid] = s[mid], s[l]

	i, j := l, r
	pivot := s[i]
	pk := key(pivot)
	for i < j {
		for i < j && key(s[j]) > pk {
			j--
		}
		if i < j {
			s[i] = s[j]
			i++
		}
		for i < j && key(s[i]) < pk {
			i++
		}
		if i < j {
			s[j] = s[i]
			j--
		}
	}
	s[i] = pivot
	return i
}

func sortRange[E any](s []E, l, r int, key func(E) float64) {
	if !validRange(len(s), l, r) || l == r {
		return
	}
	p := partition(s, l, r, key)
	sortRange(s, l, p-1, key)
	sortRange(s, p+1, r, key)
}

// selectNth rearranges s[l..r] so that s[n] holds the element that would be
// there if the range were sorted by key, with no larger key before it and no
// smaller key after it. Only the side containing n is partitioned further.
func selectNth[E any](s []E, l, r, n int, key func(E) float64) {
	for l < r {
		p := partition(s, l, r, key)
		switch {
		case p == n:
			return
		case p < n:
			l = p + 1
		default:
			r = p - 1
		}
	}
}

// lowerSplit moves every element of s[:n] whose key is strictly below key(s[n])
// to the front and returns the index of the first element whose key equals
// key(s[n]). It requires s[:n] to have no key above key(s[n]), as left by
// selectNth.
func lowerSplit[E any](s []E, n int, key func(E) float64) int {
	v := key(s[n])
	b := 0
	for i := 0; i < n; i++ {
		if key(s[i]) < v {
			s[b], s[i] = s[i], s[b]
			b++
		}
	}
	return b
}
