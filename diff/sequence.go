package diff

import "fmt"

// compareSequences walks two sequences in lockstep, position by position,
// recursing into each paired element. A divergent element does not stop the
// walk: later elements are still visited so every mismatch is reported. The
// moment one side runs out of elements while the other has more, a single
// CollectionLength divergence is recorded for the sequence itself and the
// walk ends.
func compareSequences(p pair, rec *recorder) bool {
	equal := true

	for index := 0; ; index++ {
		leftHasMore := index < p.left.Len()
		rightHasMore := index < p.right.Len()

		if leftHasMore != rightHasMore {
			rec.record(p, CollectionLength)

			return false
		}

		if !leftHasMore {
			return equal
		}

		element := pair{
			left:  p.left.Index(index),
			right: p.right.Index(index),
			path:  fmt.Sprintf("%s[%d]", p.path, index),
		}

		if !dispatch(element, rec) {
			equal = false
		}
	}
}
