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

import "fmt"

// PointOutsideDomainError is returned when a longitude or latitude is
// outside of the range a projection accepts or produces.
type PointOutsideDomainError struct {
	// Axis is "longitude" or "latitude".
	Axis  string
	Value float64
	Limit float64
}

func (e *PointOutsideDomainError) Error() string {
	return fmt.Sprintf("mapproj: %s %g is outside of the valid range [%g, %g]",
		e.Axis, e.Value, -e.Limit, e.Limit)
}

// NonConvergenceError is returned when an iterative solution did not reach
// the required tolerance within the allowed number of iterations.
type NonConvergenceError struct {
	Method     string
	Iterations int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("mapproj: %s did not converge after %d iterations", e.Method, e.Iterations)
}

// SingularityError is returned when a point has no finite projection, for
// example the point opposite to the center of a stereographic projection
// or a pole in the Mercator projection.
type SingularityError struct {
	Projection string
	Lon, Lat   float64 // radians, relative to the central meridian
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("mapproj: %s: point (%g, %g) tends toward infinity",
		e.Projection, e.Lon*rad2deg, e.Lat*rad2deg)
}

// ConsistencyError reports that a transform and its inverse do not agree.
// It indicates a defect in a projection rather than invalid input.
type ConsistencyError struct {
	Projection string
	// Point is the input of the checked transform.
	Point [2]float64
	// Distance is the error of the round trip, in the linear unit of
	// the projection; Tolerance is the largest acceptable error.
	Distance, Tolerance float64
	Reason              string
	Err                 error
}

func (e *ConsistencyError) Error() string {
	msg := fmt.Sprintf("mapproj: %s: %s at (%g, %g)", e.Projection, e.Reason, e.Point[0], e.Point[1])
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: error %g exceeds %g", msg, e.Distance, e.Tolerance)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }
