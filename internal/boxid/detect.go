package boxid

// FindDuplicate returns the first value, in order of first appearance, that
// occurs at least twice in masked.
func FindDuplicate(masked []string) (string, bool) {
	counter := NewCounter()
	for _, m := range masked {
		counter.Add(m)
	}

	for _, m := range counter.Keys() {
		if counter.Count(m) >= 2 {
			return m, true
		}
	}
	return "", false
}

// indicesOf returns the positions in masked holding v, stopping after two.
func indicesOf(masked []string, v string) [2]int {
	pair := [2]int{-1, -1}
	n := 0
	for i, m := range masked {
		if m != v {
			continue
		}
		pair[n] = i
		n++
		if n == len(pair) {
			break
		}
	}
	return pair
}
