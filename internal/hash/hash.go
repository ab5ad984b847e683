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

// Package hash creates stable string keys for projection definitions.
package hash

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/davecgh/go-spew/spew"
)

var printer = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Hash returns a hash key for the specified object. Objects that print
// identically give identical keys, so map keys are sorted and all NaN
// values hash the same regardless of their payload.
func Hash(object interface{}) string {
	h := fnv.New128a()
	printer.Fprintf(h, "%#v", object)
	bKey := h.Sum([]byte{})
	return fmt.Sprintf("%x", bKey[0:h.Size()])
}

// Floats returns a hash key for a sequence of float64 values compared
// bit for bit, with every NaN treated as the same value.
func Floats(vals ...float64) string {
	bits := make([]uint64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			v = math.NaN()
		}
		bits[i] = math.Float64bits(v)
	}
	return Hash(bits)
}
