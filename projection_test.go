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
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/mapproj/param"
)

func wgs84(extra param.Values) param.Values {
	v := param.Values{"semi_major": wgs84A, "semi_minor": 6356752.314}
	for k, val := range extra {
		v[k] = val
	}
	return v
}

func TestDefaults(t *testing.T) {
	p := mustNew(t, "Stereographic", wgs84(nil))
	params := p.Parameters()
	if params.CentralMeridian() != 0 || params.LatitudeOfOrigin() != 0 ||
		params.ScaleFactor() != 1 || params.FalseEasting() != 0 || params.FalseNorthing() != 0 {
		t.Errorf("unexpected defaults: %v", p)
	}
	if absDifferent(params.EccentricitySquared(), 0.006694380066764705, 1e-12) {
		t.Errorf("eccentricity squared: have %.15g", params.EccentricitySquared())
	}
	if absDifferent(params.Eccentricity(), math.Sqrt(0.006694380066764705), 1e-12) {
		t.Errorf("eccentricity: have %.15g", params.Eccentricity())
	}
	if params.Spherical() {
		t.Errorf("ellipsoid reported as spherical")
	}
	if params.GlobalScale() != wgs84A {
		t.Errorf("global scale: have %g", params.GlobalScale())
	}
	if p.Kind() != USGSOblique {
		t.Errorf("kind: have %v", p.Kind())
	}
}

func TestMissingParameter(t *testing.T) {
	p, err := New("Oblique_Stereographic", param.Values{"semi_major": wgs84A})
	if p != nil {
		t.Errorf("projection should be nil")
	}
	var missing *param.MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("want *param.MissingParameterError, have %v", err)
	}
	if missing.Name != "semi_minor" {
		t.Errorf("name: have %q", missing.Name)
	}
}

func TestInvalidParameters(t *testing.T) {
	for name, v := range map[string]param.Values{
		"minor > major": {"semi_major": 1, "semi_minor": 2},
		"latitude":      wgs84(param.Values{"latitude_of_origin": 91}),
		"scale":         wgs84(param.Values{"scale_factor": 0}),
		"meridian":      wgs84(param.Values{"central_meridian": -181}),
	} {
		t.Run(name, func(t *testing.T) {
			p, err := New("Stereographic", v)
			var invalid *param.InvalidParameterError
			if !errors.As(err, &invalid) {
				t.Fatalf("want *param.InvalidParameterError, have %v", err)
			}
			if p != nil {
				t.Errorf("projection should be nil")
			}
		})
	}
}

func TestUnknownMethod(t *testing.T) {
	if _, err := New("Lambert_Conformal_Conic_2SP", wgs84(nil)); err == nil {
		t.Errorf("want an error for an unsupported method")
	}
}

func TestProviders(t *testing.T) {
	want := []string{"Mercator_1SP", "Mercator_2SP", "Oblique_Stereographic", "Polar_Stereographic", "Stereographic"}
	have := Providers()
	if strings.Join(have, ",") != strings.Join(want, ",") {
		t.Errorf("have %v, want %v", have, want)
	}
	g, err := Group("STEREA")
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "Oblique_Stereographic" {
		t.Errorf("group: have %q", g.Name)
	}
}

func TestDomain(t *testing.T) {
	projections := map[string]*Projection{
		"spherical":   mustNew(t, "Stereographic", param.Values{"a": 1, "b": 1}),
		"usgs":        mustNew(t, "Stereographic", wgs84(nil)),
		"epsg":        mustNew(t, "Oblique_Stereographic", wgs84(param.Values{"lat_0": 10})),
		"polar north": mustNew(t, "Polar_Stereographic", wgs84(param.Values{"lat_0": 90})),
	}
	for name, p := range projections {
		t.Run(name, func(t *testing.T) {
			for _, pt := range [][2]float64{{181, 0}, {0, 91}, {-180.001, 0}, {0, -90.5}} {
				_, _, err := p.Forward(pt[0], pt[1])
				var domain *PointOutsideDomainError
				if !errors.As(err, &domain) {
					t.Errorf("Forward(%g, %g): want *PointOutsideDomainError, have %v", pt[0], pt[1], err)
				}
			}
			for _, pt := range [][2]float64{{180, 90}, {180 + 1e-7, 10}, {-180, 45}} {
				x, y, err := p.Forward(pt[0], pt[1])
				if name == "epsg" {
					// The conformal sphere stretches longitudes, so the
					// antimeridian itself is out of reach.
					var domain *PointOutsideDomainError
					if !errors.As(err, &domain) {
						t.Errorf("Forward(%g, %g): want *PointOutsideDomainError, have %v", pt[0], pt[1], err)
					}
					continue
				}
				if err != nil {
					t.Errorf("Forward(%g, %g): %v", pt[0], pt[1], err)
				}
				if math.IsNaN(x) || math.IsNaN(y) {
					t.Errorf("Forward(%g, %g) = (%g, %g)", pt[0], pt[1], x, y)
				}
			}
		})
	}
}

func TestPoleUSGS(t *testing.T) {
	p := mustNew(t, "Stereographic", wgs84(nil))
	_, y, err := p.Forward(180, 90)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(y, 12756274, 1e-2) {
		t.Errorf("have y = %.4f, want 12756274", y)
	}
}

func TestSingularity(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		v        param.Values
		lon, lat float64
	}{
		{name: "spherical antipode", method: "Stereographic", v: param.Values{"a": 1, "b": 1, "lat_0": 40},
			lon: 180, lat: -40},
		{name: "north pole mercator", method: "Mercator_1SP", v: wgs84(nil), lon: 0, lat: 90},
		{name: "south pole mercator", method: "Mercator_1SP", v: wgs84(nil), lon: 10, lat: -90},
		{name: "opposite pole", method: "Polar_Stereographic", v: wgs84(param.Values{"lat_0": 90}),
			lon: 0, lat: -90},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := mustNew(t, test.method, test.v)
			x, y, err := p.Forward(test.lon, test.lat)
			var singular *SingularityError
			if !errors.As(err, &singular) {
				t.Fatalf("want *SingularityError, have %v", err)
			}
			if !math.IsNaN(x) || !math.IsNaN(y) {
				t.Errorf("have (%g, %g), want NaN", x, y)
			}
		})
	}
}

func TestNonConvergence(t *testing.T) {
	p := mustNew(t, "Stereographic", param.Values{"semi_major": 1, "semi_minor": 1e-4})
	if p.Kind() != USGSOblique {
		t.Fatalf("kind: have %v", p.Kind())
	}
	_, _, err := p.Inverse(0, 0.1)
	var nc *NonConvergenceError
	if !errors.As(err, &nc) {
		t.Fatalf("want *NonConvergenceError, have %v", err)
	}
	if nc.Iterations != maxIterations {
		t.Errorf("iterations: have %d", nc.Iterations)
	}
}

func TestWrapAround(t *testing.T) {
	p := mustNew(t, "Stereographic", wgs84(param.Values{"central_meridian": 170}))
	x, y, err := p.Forward(-175, 0)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(x, 1679395.332, 1e-3) || absDifferent(y, 0, 1e-6) {
		t.Errorf("forward: have (%.4f, %.4f)", x, y)
	}
	lon, lat, err := p.Inverse(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(lon, -175, 1e-9) || absDifferent(lat, 0, 1e-9) {
		t.Errorf("inverse: have (%g, %g), want (-175, 0)", lon, lat)
	}
}

func TestSnapping(t *testing.T) {
	p := mustNew(t, "Stereographic", wgs84(param.Values{"lat_0": 1e-5}))
	if p.Parameters().LatitudeOfOrigin() != 0 {
		t.Errorf("latitude of origin was not snapped to the equator: %g", p.Parameters().LatitudeOfOrigin())
	}
	p = mustNew(t, "Stereographic", wgs84(param.Values{"lat_0": -89.99999999}))
	if p.Kind() != Polar || absDifferent(p.Parameters().LatitudeOfOrigin(), -90, 1e-12) {
		t.Errorf("have %v at %g, want Polar at -90", p.Kind(), p.Parameters().LatitudeOfOrigin())
	}
	p = mustNew(t, "Mercator_1SP", wgs84(param.Values{"lat_0": 30}))
	if p.Parameters().LatitudeOfOrigin() != 0 {
		t.Errorf("mercator latitude of origin: %g", p.Parameters().LatitudeOfOrigin())
	}
	p = mustNew(t, "Oblique_Stereographic", param.Values{"a": 2, "b": 2, "lat_0": 45})
	if p.Kind() != Spherical {
		t.Errorf("kind: have %v, want Spherical", p.Kind())
	}
}

func TestEqual(t *testing.T) {
	v := wgs84(param.Values{"lat_0": 45, "lon_0": 10, "k": 0.9999})
	a := mustNew(t, "Stereographic", v)
	b := mustNew(t, "stere", v.Clone())
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("projections should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("hashes should be equal: %s != %s", a.Hash(), b.Hash())
	}

	v2 := v.Clone()
	v2["false_easting"] = 1
	c := mustNew(t, "Stereographic", v2)
	if a.Equal(c) {
		t.Errorf("projections with different false easting should differ")
	}
	if a.Hash() == c.Hash() {
		t.Errorf("hashes should differ")
	}

	d := mustNew(t, "Oblique_Stereographic", v)
	if a.Equal(d) {
		t.Errorf("projections of different kinds should differ")
	}
	if a.Equal(nil) {
		t.Errorf("projection should not equal nil")
	}

	polar := wgs84(param.Values{"lat_0": 90, "standard_parallel_1": 70})
	if !mustNew(t, "Polar_Stereographic", polar).Equal(mustNew(t, "EPSG:9829", polar)) {
		t.Errorf("polar projections should be equal")
	}

	// The same formulas reached through different methods are not equal,
	// since they describe themselves differently.
	sphere := param.Values{"a": 6371000, "b": 6371000, "lat_0": 45}
	e, f := mustNew(t, "Stereographic", sphere), mustNew(t, "Oblique_Stereographic", sphere)
	if e.Kind() != f.Kind() {
		t.Fatalf("kinds: %v, %v", e.Kind(), f.Kind())
	}
	if e.Equal(f) || f.Equal(e) {
		t.Errorf("projections of different methods should differ")
	}
	if e.Hash() == f.Hash() {
		t.Errorf("hashes of different methods should differ")
	}
	ps, ss := mustNew(t, "Polar_Stereographic", polar), mustNew(t, "stere", polar)
	if ps.Kind() != Polar || ss.Kind() != Polar || ps.Equal(ss) {
		t.Errorf("polar projections of different methods: kinds %v, %v", ps.Kind(), ss.Kind())
	}
}

func TestParameterDescriptor(t *testing.T) {
	p := mustNew(t, "Mercator_1SP", param.Values{"a": wgs84A, "b": wgs84A})
	want := `PARAM_MT["Mercator_1SP", PARAMETER["semi_major", 6378137], PARAMETER["semi_minor", 6378137], ` +
		`PARAMETER["central_meridian", 0], PARAMETER["latitude_of_origin", 0], PARAMETER["scale_factor", 1], ` +
		`PARAMETER["false_easting", 0], PARAMETER["false_northing", 0]]`
	if have := p.String(); have != want {
		t.Errorf("have\n%s\nwant\n%s", have, want)
	}

	polar := mustNew(t, "Polar_Stereographic", wgs84(param.Values{"lat_0": -90, "standard_parallel_1": -71}))
	if !strings.Contains(polar.ParameterDescriptor(), `PARAMETER["standard_parallel_1", -71`) {
		t.Errorf("standard parallel missing from %s", polar.ParameterDescriptor())
	}
	v := polar.ParameterValues()
	if absDifferent(v["standard_parallel_1"], -71, 1e-12) || absDifferent(v["latitude_of_origin"], -90, 1e-12) {
		t.Errorf("parameter values: %v", v)
	}
}

func TestInverseTransform(t *testing.T) {
	p := mustNew(t, "Oblique_Stereographic", referenceTests[0].v)
	var wg sync.WaitGroup
	invs := make([]Transform, 8)
	for i := range invs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			invs[i] = p.InverseTransform()
		}(i)
	}
	wg.Wait()
	for _, inv := range invs {
		if inv != invs[0] {
			t.Fatalf("InverseTransform returned different values")
		}
	}
	inv := p.InverseTransform()
	if back, ok := inv.InverseTransform().(*Projection); !ok || back != p {
		t.Errorf("inverse of the inverse should be the projection")
	}
	lon, lat, err := inv.TransformPoint(196105.283, 557057.739)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(lon, 6, 1e-7) || absDifferent(lat, 53, 1e-7) {
		t.Errorf("have (%g, %g)", lon, lat)
	}
}

func TestGeomTransform(t *testing.T) {
	p := mustNew(t, "Oblique_Stereographic", referenceTests[0].v)
	g, err := geom.LineString{{X: 6, Y: 53}, {X: 5.38763888888889, Y: 52.15616055555555}}.Transform(p.Forward)
	if err != nil {
		t.Fatal(err)
	}
	ls := g.(geom.LineString)
	if absDifferent(ls[0].X, 196105.283, 1e-3) || absDifferent(ls[0].Y, 557057.739, 1e-3) {
		t.Errorf("first point: have %v", ls[0])
	}
	if absDifferent(ls[1].X, 155000, 1e-3) || absDifferent(ls[1].Y, 463000, 1e-3) {
		t.Errorf("origin: have %v", ls[1])
	}
	back, err := ls.Transform(p.Inverse)
	if err != nil {
		t.Fatal(err)
	}
	if pt := back.(geom.LineString)[0]; absDifferent(pt.X, 6, 1e-9) || absDifferent(pt.Y, 53, 1e-9) {
		t.Errorf("inverse: have %v", pt)
	}
}
