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

/*
Package mapproj transforms geographic coordinates (longitude and latitude in
decimal degrees on an ellipsoid or a sphere) into planar projected
coordinates and back.

Projections are created by method name from a set of named parameters:

	p, err := mapproj.New("Oblique_Stereographic", param.Values{
		"semi_major":         6377397.155,
		"semi_minor":         6356078.962818189,
		"latitude_of_origin": 52.15616055555555,
		"central_meridian":   5.38763888888889,
		"scale_factor":       0.9999079,
		"false_easting":      155000,
		"false_northing":     463000,
	})
	if err != nil {
		log.Fatal(err)
	}
	x, y, err := p.Forward(6, 53) // 196105.283, 557057.739

or from a PROJ.4 definition:

	p, err := mapproj.Parse("+proj=stere +lat_0=90 +lat_ts=70 +lon_0=-45 +ellps=WGS84")

Every projection works in a normalized space (a unit ellipsoid with the
central meridian removed) and shares the same pipeline for unit conversion,
domain checks, longitude wraparound, scaling and false origin offsets.
Batch transforms over packed coordinate arrays never stop early: points that
fail are set to NaN and the first error is returned after the whole batch
has been processed.

The Forward and Inverse methods have the signature of proj.Transformer from
github.com/ctessum/geom/proj, so they can be passed to the Transform method of
any geom.Geom.

Building with the mapprojverify tag checks every transform against its
inverse and panics with a *ConsistencyError if they disagree. The same checks
are available at any time through Verify and VerifyInverse.
*/
package mapproj

// Version gives the version number.
const Version = "1.0.0"
