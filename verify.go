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
	"math"

	"github.com/golang/geo/s2"
)

const (
	// maxRoundTripError is the largest acceptable distance, in the linear
	// unit of the projection, between a point and the result of
	// transforming it forward and back.
	maxRoundTripError = 1

	// edgeFactor widens the tolerance near the antimeridian and the
	// poles, where the formulas lose precision.
	edgeFactor = 5

	// crossCheckTolerance is the largest acceptable difference, in
	// normalized units, between a spherical formula and the ellipsoidal
	// formula evaluated with a zero eccentricity.
	crossCheckTolerance = 1e-6
)

func roundTripTolerance(lon, lat float64) float64 {
	if math.Abs(lon) > 179 || math.Abs(lat) > 89 {
		return edgeFactor * maxRoundTripError
	}
	return maxRoundTripError
}

// orthodromicDistance returns the great circle distance between two
// geographic points, in the linear unit of p.
func (p *Projection) orthodromicDistance(lon1, lat1, lon2, lat2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * p.params.semiMajor
}

// Verify checks that projecting the geographic point (lon, lat) and
// converting the result back gives the original point. It returns a
// *ConsistencyError if it does not, or the error of the forward
// transform if the point cannot be projected.
func (p *Projection) Verify(lon, lat float64) error {
	x, y, err := p.forward(lon, lat)
	if err != nil {
		return err
	}
	return p.checkForward(lon, lat, x, y)
}

// VerifyInverse checks that converting the projected point (x, y) to
// geographic coordinates and projecting the result gives the original
// point.
func (p *Projection) VerifyInverse(x, y float64) error {
	lon, lat, err := p.inverse(x, y)
	if err != nil {
		return err
	}
	return p.checkInverse(x, y, lon, lat)
}

// checkForward checks that (x, y), the projection of (lon, lat), converts
// back to (lon, lat).
func (p *Projection) checkForward(lon, lat, x, y float64) error {
	lon2, lat2, err := p.inverse(x, y)
	if err != nil {
		return &ConsistencyError{Projection: p.name, Point: [2]float64{lon, lat},
			Reason: "inverse of projected point failed", Err: err}
	}
	tol := roundTripTolerance(lon, lat)
	if d := p.orthodromicDistance(lon, lat, lon2, lat2); !(d <= tol) {
		return &ConsistencyError{Projection: p.name, Point: [2]float64{lon, lat},
			Distance: d, Tolerance: tol, Reason: "forward transform is not reversible"}
	}
	return p.crossCheck(lon, lat)
}

// checkInverse checks that (lon, lat), the inverse of (x, y), projects
// back to (x, y).
func (p *Projection) checkInverse(x, y, lon, lat float64) error {
	x2, y2, err := p.forward(lon, lat)
	if err != nil {
		return &ConsistencyError{Projection: p.name, Point: [2]float64{x, y},
			Reason: "projection of inverse point failed", Err: err}
	}
	tol := roundTripTolerance(lon, lat)
	if d := math.Hypot(x2-x, y2-y); !(d <= tol) {
		return &ConsistencyError{Projection: p.name, Point: [2]float64{x, y},
			Distance: d, Tolerance: tol, Reason: "inverse transform is not reversible"}
	}
	return nil
}

// crossCheck compares the spherical formulas with the ellipsoidal ones
// evaluated on a sphere. It does nothing for ellipsoidal projections.
func (p *Projection) crossCheck(lon, lat float64) error {
	if !p.params.spherical || (p.kind != Spherical && p.kind != Mercator) {
		return nil
	}
	lam := lon*deg2rad - p.params.centralMeridian
	if p.params.centralMeridian != 0 {
		lam = rollLongitude(lam)
	}
	phi := lat * deg2rad
	x, y, err := p.forwardNormalized(lam, phi)
	if err != nil {
		return nil
	}
	var ex, ey float64
	switch p.kind {
	case Spherical:
		var c constants
		c.setUSGS(p.params)
		ex, ey, err = usgsForward(&c, lam, phi)
	case Mercator:
		ex, ey, err = lam, -math.Log(tsfn(0, phi, math.Sin(phi))), nil
	}
	if err != nil {
		return nil
	}
	if d := math.Hypot(ex-x, ey-y); !(d <= crossCheckTolerance) {
		return &ConsistencyError{Projection: p.name, Point: [2]float64{lon, lat},
			Distance: d, Tolerance: crossCheckTolerance,
			Reason: "spherical formula disagrees with ellipsoidal formula"}
	}
	return nil
}
