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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/spatialmodel/mapproj/param"
)

// roundTripCase describes a projection and the region in which points are
// checked.
type roundTripCase struct {
	name           string
	method         string
	v              param.Values
	lonMin, lonMax float64
	latMin, latMax float64
}

var roundTripCases = []roundTripCase{
	{name: "RD New", method: "Oblique_Stereographic", v: referenceTests[0].v,
		lonMin: -55, lonMax: 65, latMin: -5, latMax: 85},
	{name: "USGS", method: "Stereographic", v: referenceTests[1].v,
		lonMin: -160, lonMax: -40, latMin: -20, latMax: 85},
	{name: "USGS equatorial", method: "Stereographic", v: wgs84(param.Values{"lon_0": 170}),
		lonMin: 100, lonMax: 180, latMin: -60, latMax: 60},
	{name: "USGS across the antimeridian", method: "Stereographic", v: wgs84(param.Values{"lon_0": 170}),
		lonMin: -180, lonMax: -110, latMin: -60, latMax: 60},
	{name: "sphere", method: "Stereographic", v: referenceTests[2].v,
		lonMin: -160, lonMax: -40, latMin: -20, latMax: 89.5},
	{name: "spherical double stereographic", method: "Oblique_Stereographic",
		v:      param.Values{"a": 6371000, "b": 6371000, "lat_0": -30, "lon_0": 20},
		lonMin: -40, lonMax: 80, latMin: -89.5, latMax: 20},
	{name: "north polar", method: "Polar_Stereographic", v: referenceTests[3].v,
		lonMin: -180, lonMax: 180, latMin: 0, latMax: 90},
	{name: "south polar", method: "Polar_Stereographic", v: referenceTests[4].v,
		lonMin: -180, lonMax: 180, latMin: -90, latMax: 0},
	{name: "mercator", method: "Mercator_1SP", v: referenceTests[5].v,
		lonMin: -180, lonMax: 180, latMin: -85, latMax: 85},
	{name: "spherical mercator", method: "Mercator_1SP", v: referenceTests[7].v,
		lonMin: -180, lonMax: 180, latMin: -85, latMax: 85},
}

func TestVerify(t *testing.T) {
	for _, test := range roundTripCases {
		t.Run(test.name, func(t *testing.T) {
			p := mustNew(t, test.method, test.v)
			for lat := test.latMin; lat <= test.latMax; lat += (test.latMax - test.latMin) / 10 {
				for lon := test.lonMin; lon <= test.lonMax; lon += (test.lonMax - test.lonMin) / 12 {
					if err := p.Verify(lon, lat); err != nil {
						t.Errorf("(%g, %g): %v", lon, lat, err)
					}
					x, y, err := p.Forward(lon, lat)
					if err != nil {
						t.Fatal(err)
					}
					if err := p.VerifyInverse(x, y); err != nil {
						t.Errorf("inverse (%g, %g): %v", x, y, err)
					}
					lon2, lat2, err := p.Inverse(x, y)
					if err != nil {
						t.Fatal(err)
					}
					if d := distance(lon, lat, lon2, lat2); d > 1e-8 && math.Abs(lat) < 89.9 {
						t.Errorf("(%g, %g) converts back to (%g, %g)", lon, lat, lon2, lat2)
					}
				}
			}
		})
	}
}

// distance returns the great circle distance between two points in
// degrees.
func distance(lon1, lat1, lon2, lat2 float64) float64 {
	return s2.LatLngFromDegrees(lat1, lon1).Distance(s2.LatLngFromDegrees(lat2, lon2)).Degrees()
}

func TestOrthodromicDistance(t *testing.T) {
	p := mustNew(t, "Stereographic", param.Values{"a": 1000, "b": 1000})
	tests := []struct {
		lon1, lat1, lon2, lat2 float64
		want                   s1.Angle
	}{
		{0, 0, 90, 0, 90 * s1.Degree},
		{0, 0, 0, 90, 90 * s1.Degree},
		{-179, 0, 179, 0, 2 * s1.Degree},
		{10, 45, 10, 45, 0},
		{0, 89, 180, 89, 2 * s1.Degree},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.lon1, test.lat1, test.lon2, test.lat2), func(t *testing.T) {
			have := p.orthodromicDistance(test.lon1, test.lat1, test.lon2, test.lat2)
			if absDifferent(have, test.want.Radians()*1000, 1e-9) {
				t.Errorf("have %g, want %g", have, test.want.Radians()*1000)
			}
		})
	}
}

func TestCrossCheck(t *testing.T) {
	for _, test := range []struct {
		name string
		p    *Projection
	}{
		{name: "stereographic", p: mustNew(t, "Stereographic", referenceTests[2].v)},
		{name: "mercator", p: mustNew(t, "Mercator_1SP", referenceTests[7].v)},
	} {
		t.Run(test.name, func(t *testing.T) {
			for lat := -80.; lat <= 80; lat += 20 {
				for lon := -150.; lon <= 150; lon += 30 {
					if err := test.p.crossCheck(lon, lat); err != nil {
						t.Error(err)
					}
				}
			}
		})
	}
}

// The spherical formulas must agree with the ellipsoidal ones as the
// eccentricity tends to zero.
func TestSphericalLimit(t *testing.T) {
	const a = 6371000
	sphere := mustNew(t, "Stereographic", param.Values{"a": a, "b": a, "lat_0": 40, "lon_0": -100})
	ellipsoid := mustNew(t, "Stereographic", param.Values{"a": a, "b": a * (1 - 1e-13), "lat_0": 40, "lon_0": -100})
	if sphere.Kind() != Spherical || ellipsoid.Kind() != USGSOblique {
		t.Fatalf("kinds: %v, %v", sphere.Kind(), ellipsoid.Kind())
	}
	merc := mustNew(t, "Mercator_1SP", param.Values{"a": a, "b": a})
	ellMerc := mustNew(t, "Mercator_1SP", param.Values{"a": a, "b": a * (1 - 1e-13)})
	for lat := -60.; lat <= 60; lat += 15 {
		for lon := -150.; lon <= -50; lon += 10 {
			x1, y1, err := sphere.Forward(lon, lat)
			if err != nil {
				t.Fatal(err)
			}
			x2, y2, err := ellipsoid.Forward(lon, lat)
			if err != nil {
				t.Fatal(err)
			}
			if absDifferent(x1, x2, 1e-6*a) || absDifferent(y1, y2, 1e-6*a) {
				t.Errorf("stereographic (%g, %g): sphere (%g, %g), ellipsoid (%g, %g)", lon, lat, x1, y1, x2, y2)
			}
			x1, y1, _ = merc.Forward(lon, lat)
			x2, y2, _ = ellMerc.Forward(lon, lat)
			if absDifferent(x1, x2, 1e-6*a) || absDifferent(y1, y2, 1e-6*a) {
				t.Errorf("mercator (%g, %g): sphere (%g, %g), ellipsoid (%g, %g)", lon, lat, x1, y1, x2, y2)
			}
		}
	}
}

func TestVerifyDetectsInconsistency(t *testing.T) {
	p := mustNew(t, "Oblique_Stereographic", referenceTests[0].v)
	p.c.ratexp *= 2
	err := p.Verify(6, 53)
	var ce *ConsistencyError
	if !errors.As(err, &ce) {
		t.Fatalf("want *ConsistencyError, have %v", err)
	}
	if !(ce.Distance > ce.Tolerance) || ce.Tolerance != maxRoundTripError {
		t.Errorf("distance %g, tolerance %g", ce.Distance, ce.Tolerance)
	}

	sphere := mustNew(t, "Stereographic", referenceTests[2].v)
	sphere.c.sinphi0, sphere.c.cosphi0 = math.Sincos(sphere.c.phi0 + 0.01)
	if err := sphere.Verify(-90, 30); !errors.As(err, &ce) {
		t.Errorf("want *ConsistencyError from the spherical cross check, have %v", err)
	}
}

func TestVerifyEdgeTolerance(t *testing.T) {
	if roundTripTolerance(179.5, 0) != edgeFactor*maxRoundTripError ||
		roundTripTolerance(0, -89.5) != edgeFactor*maxRoundTripError ||
		roundTripTolerance(100, 45) != maxRoundTripError {
		t.Errorf("unexpected tolerances")
	}
}

func TestVerifyDoubleStereographicAntimeridian(t *testing.T) {
	p := mustNew(t, "Oblique_Stereographic", wgs84(param.Values{"lat_0": 10}))
	for _, lon := range []float64{179.5, -179.5, 180, -180} {
		err := p.Verify(lon, 10)
		var domain *PointOutsideDomainError
		if !errors.As(err, &domain) {
			t.Errorf("Verify(%g, 10): want *PointOutsideDomainError, have %v", lon, err)
		}
		if _, _, err := p.Forward(lon, 10); !errors.As(err, &domain) {
			t.Errorf("Forward(%g, 10): want *PointOutsideDomainError, have %v", lon, err)
		}
	}
	for _, pt := range [][2]float64{{179.4, 10}, {-179.4, 10}, {179.4, -60}, {179.4, 80}} {
		if err := p.Verify(pt[0], pt[1]); err != nil {
			t.Errorf("Verify(%g, %g): %v", pt[0], pt[1], err)
		}
	}
}
