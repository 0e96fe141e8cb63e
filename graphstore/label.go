package graphstore

// labelFor converts a zero-based node id to its display label in bijective
// base-26: 0→"A", 25→"Z", 26→"AA". Labels follow creation order and, like
// ids, are never reused within a session.
func labelFor(id int64) string {
	// Bijective base-26 has no zero digit, hence the +1 / -1 dance.
	n := id + 1
	buf := make([]byte, 0, 4)
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	// Digits were produced least-significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
