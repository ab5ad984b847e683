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

package hash

import (
	"math"
	"testing"
)

func TestHash(t *testing.T) {
	a := map[string]float64{"semi_major": 6378137, "semi_minor": 6356752.314}
	b := map[string]float64{"semi_minor": 6356752.314, "semi_major": 6378137}
	if Hash(a) != Hash(b) {
		t.Errorf("map key order changed the hash")
	}
	c := map[string]float64{"semi_major": 6378137, "semi_minor": 6378137}
	if Hash(a) == Hash(c) {
		t.Errorf("different maps gave the same hash %s", Hash(a))
	}
}

func TestFloats(t *testing.T) {
	nan1 := math.Float64frombits(0x7ff8000000000001)
	if Floats(1, nan1) != Floats(1, math.NaN()) {
		t.Errorf("NaN payload changed the hash")
	}
	if Floats(0) == Floats(math.Copysign(0, -1)) {
		t.Errorf("0 and -0 should hash differently")
	}
	if Floats(1, 2) == Floats(2, 1) {
		t.Errorf("order should matter")
	}
}
