// Package ncd computes the Normalized Compression Distance between sequences.
//
// For sequences x and y with compressed sizes C(x) and C(y):
//
//	NCD(x,y) = (min(C(xy), C(yx)) - min(C(x), C(y))) / max(C(x), C(y))
//
// Both concatenation orders are compressed because some compressors do better
// on one than the other. Related sequences compress well together and get a
// small distance, unrelated ones land near 1 (a little above for short inputs,
// where the compressors' headers dominate).
package ncd

import "fmt"

// DegenerateInputError is returned when sizes can't give a distance: both
// single sizes are zero, or a size is negative.
type DegenerateInputError struct {
	SizeX, SizeY, SizeXY, SizeYX int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf(
		"degenerate compressed sizes: x=%d y=%d xy=%d yx=%d",
		e.SizeX, e.SizeY, e.SizeXY, e.SizeYX,
	)
}

// Distance returns the NCD from the compressed sizes of x, y, and both of
// their concatenations.
func Distance(sizeX, sizeY, sizeXY, sizeYX int) (float64, error) {
	if sizeX < 0 || sizeY < 0 || sizeXY < 0 || sizeYX < 0 || (sizeX == 0 && sizeY == 0) {
		return 0, &DegenerateInputError{sizeX, sizeY, sizeXY, sizeYX}
	}

	return float64(min(sizeXY, sizeYX)-min(sizeX, sizeY)) / float64(max(sizeX, sizeY)), nil
}
