/*
Copyright © 2019 the mapproj authors.
This file is part of mapproj.

mapproj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

mapproj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with mapproj.  If not, see <http://www.gnu.org/licenses/>.
*/

package mapproj

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

type float interface {
	~float32 | ~float64
}

// transformArray applies f to n points packed in src and stores the
// results in dst. Failed points are set to NaN; the first error is
// returned once every point has been processed.
func transformArray[T float](f func(x, y float64) (float64, float64, error), src []T, srcOff int, dst []T, dstOff, n int) error {
	if n <= 0 {
		return nil
	}
	if srcOff < 0 || dstOff < 0 || srcOff+2*n > len(src) || dstOff+2*n > len(dst) {
		return fmt.Errorf("mapproj: %d points do not fit in source (length %d, offset %d) and destination (length %d, offset %d)",
			n, len(src), srcOff, len(dst), dstOff)
	}
	step := 2
	reverse := overlapsAhead(src[srcOff:srcOff+2*n], dst[dstOff:dstOff+2*n])
	if reverse {
		srcOff += 2 * (n - 1)
		dstOff += 2 * (n - 1)
		step = -2
	}
	var first error
	for i := 0; i < n; i++ {
		x, y, err := f(float64(src[srcOff]), float64(src[srcOff+1]))
		if err != nil {
			if first == nil {
				index := i
				if reverse {
					index = n - 1 - i
				}
				first = errors.Wrapf(err, "mapproj: point %d", index)
			}
			x, y = math.NaN(), math.NaN()
		}
		dst[dstOff], dst[dstOff+1] = T(x), T(y)
		srcOff += step
		dstOff += step
	}
	return first
}

// overlapsAhead reports whether dst starts inside src after its first
// element, in which case a forward pass would overwrite points of src
// before reading them.
func overlapsAhead[T float](src, dst []T) bool {
	var zero T
	s := uintptr(unsafe.Pointer(&src[0]))
	d := uintptr(unsafe.Pointer(&dst[0]))
	return d > s && d < s+uintptr(len(src))*unsafe.Sizeof(zero)
}
