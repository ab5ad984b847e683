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

import "math"

const (
	halfPi  = math.Pi / 2
	quartPi = math.Pi / 4
	twoPi   = 2 * math.Pi

	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi

	// epsilon is a small tolerance on normalized coordinates and angles
	// in radians.
	epsilon = 1e-6

	// domainTolerance is the tolerance, in degrees, on the range checks
	// of geographic coordinates.
	domainTolerance = 1e-6

	// iterationTolerance is the convergence criterion of iterative
	// latitude computations.
	iterationTolerance = 1e-10

	maxIterations = 16
)

// rollLongitude wraps x (radians) into the range [-π, π).
func rollLongitude(x float64) float64 {
	return x - twoPi*math.Floor(x/twoPi+0.5)
}

// msfn computes the radius of the parallel of latitude φ divided by the
// semi-major axis, from sin φ and cos φ.
func msfn(es, sinphi, cosphi float64) float64 {
	return cosphi / math.Sqrt(1-es*sinphi*sinphi)
}

// tsfn computes the function t used in the conformal latitude of
// Snyder (1987) equation 7-10.
func tsfn(e, phi, sinphi float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(halfPi-phi)) / math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}

// cphi2 computes the latitude from t, the inverse of tsfn.
func cphi2(e, ts float64) (float64, error) {
	eccnth := 0.5 * e
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i < maxIterations; i++ {
		con := e * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= iterationTolerance {
			return phi, nil
		}
	}
	return math.NaN(), &NonConvergenceError{Method: "inverse conformal latitude", Iterations: maxIterations}
}

// ssfn computes the tangent of the conformal colatitude half angle,
// Snyder (1987) equation 3-1.
func ssfn(e, phit, sinphi float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(halfPi+phit)) * math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}

func srat(esinp, exp float64) float64 {
	return math.Pow((1-esinp)/(1+esinp), exp)
}
