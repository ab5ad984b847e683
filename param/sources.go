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

package param

import (
	"fmt"
	"math"

	"github.com/ctessum/geom/proj"
	"github.com/spf13/cast"
)

const rad2deg = 180 / math.Pi

// FromMap converts loosely typed values, such as those read from a
// configuration file, into a Values set.
func FromMap(m map[string]interface{}) (Values, error) {
	v := make(Values, len(m))
	for k, i := range m {
		f, err := cast.ToFloat64E(i)
		if err != nil {
			return nil, fmt.Errorf("param: parameter %q: %v", k, err)
		}
		v[k] = f
	}
	return v, nil
}

// FromProjString parses a PROJ.4 (for example
// "+proj=sterea +lat_0=52.156 +lon_0=5.387 +k=0.9999079 +ellps=bessel") or
// WKT projection definition and returns the projection method name and
// its parameter values. Ellipsoid names are resolved to axis lengths.
// Datum shifts, units and axis order are not carried over.
func FromProjString(def string) (name string, v Values, err error) {
	sr, err := proj.Parse(def)
	if err != nil {
		return "", nil, fmt.Errorf("param: parsing projection definition: %v", err)
	}
	if sr.Name == "" {
		return "", nil, fmt.Errorf("param: projection definition %q has no projection method", def)
	}
	v = make(Values)
	set := func(d Descriptor, val float64) {
		if !math.IsNaN(val) {
			v[d.Name] = val
		}
	}
	set(SemiMajor, sr.A)
	set(SemiMinor, sr.B)
	set(CentralMeridian, sr.Long0*rad2deg)
	set(LatitudeOfOrigin, sr.Lat0*rad2deg)
	set(ScaleFactor, sr.K0)
	set(FalseEasting, sr.X0)
	set(FalseNorthing, sr.Y0)
	if !math.IsNaN(sr.LatTS) {
		set(StandardParallel, sr.LatTS*rad2deg)
	} else {
		set(StandardParallel, sr.Lat1*rad2deg)
	}
	return sr.Name, v, nil
}
