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

	"github.com/spatialmodel/mapproj/param"
)

// References:
//
//	Snyder, J.P. (1987). Map Projections - A Working Manual.
//	U.S. Geological Survey Professional Paper 1395, pp. 154-163.
//
//	IOGP Publication 373-7-2, Geomatics Guidance Note number 7, part 2:
//	Coordinate Conversions and Transformations including Formulas,
//	section 1.3.7 Oblique and Equatorial Stereographic.

var obliqueStereographic = param.Group{
	Name:        "Oblique_Stereographic",
	Aliases:     []string{"Double_Stereographic", "sterea", "EPSG:9809"},
	Descriptors: param.Common,
}

var stereographic = param.Group{
	Name:        "Stereographic",
	Aliases:     []string{"stere", "Stereographic_USGS"},
	Descriptors: append(param.Common[:len(param.Common):len(param.Common)], param.StandardParallel),
}

func init() {
	register(obliqueStereographic, newObliqueStereographic)
	register(stereographic, newStereographic)
}

// newObliqueStereographic creates the double stereographic projection
// used by EPSG, which maps the ellipsoid onto a conformal sphere before
// projecting it.
func newObliqueStereographic(g param.Group, v param.Values) (*Projection, error) {
	params, err := NewParameters(v)
	if err != nil {
		return nil, err
	}
	params = snapEquator(params)
	if params.spherical {
		return newProjection(g, Spherical, params, math.NaN()), nil
	}
	return newProjection(g, EPSGAlternative, params, math.NaN()), nil
}

// newStereographic creates the stereographic projection of Snyder (1987).
// A latitude of origin at either pole selects the polar stereographic
// projection.
func newStereographic(g param.Group, v param.Values) (*Projection, error) {
	params, err := NewParameters(v)
	if err != nil {
		return nil, err
	}
	if math.Abs(params.latitudeOfOrigin) >= halfPi-epsilon {
		return newPolarProjection(g, params, v)
	}
	params = snapEquator(params)
	if params.spherical {
		return newProjection(g, Spherical, params, math.NaN()), nil
	}
	return newProjection(g, USGSOblique, params, math.NaN()), nil
}

// snapEquator sets a latitude of origin within epsilon of the equator to
// exactly zero.
func snapEquator(p Parameters) Parameters {
	if math.Abs(p.latitudeOfOrigin) < epsilon {
		return p.withLatitudeOfOrigin(0)
	}
	return p
}

func (c *constants) setSpherical(p Parameters) {
	c.phi0 = p.latitudeOfOrigin
	c.sinphi0, c.cosphi0 = math.Sincos(c.phi0)
}

func sphericalForward(c *constants, x, y float64) (float64, float64, error) {
	sinlat, coslat := math.Sincos(y)
	sinlon, coslon := math.Sincos(x)
	f := 1 + c.sinphi0*sinlat + c.cosphi0*coslat*coslon
	if f < epsilon {
		return math.NaN(), math.NaN(), &SingularityError{Projection: "stereographic", Lon: x, Lat: y}
	}
	f = 2 / f
	return f * coslat * sinlon, f * (c.cosphi0*sinlat - c.sinphi0*coslat*coslon), nil
}

func sphericalInverse(c *constants, x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	if math.Abs(rho) < epsilon {
		return 0, c.phi0, nil
	}
	sinc, cosc := math.Sincos(2 * math.Atan(0.5*rho))
	lat := asin(cosc*c.sinphi0 + y*sinc*c.cosphi0/rho)
	lon := math.Atan2(x*sinc, rho*c.cosphi0*cosc-y*c.sinphi0*sinc)
	return lon, lat, nil
}

func (c *constants) setUSGS(p Parameters) {
	sinphi0, cosphi0 := math.Sincos(p.latitudeOfOrigin)
	c.chi1 = 2*math.Atan(ssfn(p.e, p.latitudeOfOrigin, sinphi0)) - halfPi
	c.sinChi1, c.cosChi1 = math.Sincos(c.chi1)
	c.k0 = 2 * msfn(p.es, sinphi0, cosphi0)
}

func usgsForward(c *constants, x, y float64) (float64, float64, error) {
	chi := 2*math.Atan(ssfn(c.e, y, math.Sin(y))) - halfPi
	sinChi, cosChi := math.Sincos(chi)
	cosChiCosLon := cosChi * math.Cos(x)
	d := 1 + c.sinChi1*sinChi + c.cosChi1*cosChiCosLon
	if d < epsilon {
		return math.NaN(), math.NaN(), &SingularityError{Projection: "stereographic", Lon: x, Lat: y}
	}
	a := c.k0 / c.cosChi1 / d
	return a * cosChi * math.Sin(x), a * (c.cosChi1*sinChi - c.sinChi1*cosChiCosLon), nil
}

func usgsInverse(c *constants, x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	sinCe, cosCe := math.Sincos(2 * math.Atan2(rho*c.cosChi1, c.k0))
	atOrigin := math.Abs(rho) < epsilon
	chi := c.chi1
	if !atOrigin {
		chi = asin(cosCe*c.sinChi1 + y*sinCe*c.cosChi1/rho)
	}
	tp := math.Tan(0.5 * (halfPi + chi))
	lon := 0.0
	if !atOrigin {
		lon = math.Atan2(x*sinCe, rho*c.cosChi1*cosCe-y*c.sinChi1*sinCe)
	}
	phi0 := chi
	for i := 0; i < maxIterations; i++ {
		esinphi := c.e * math.Sin(phi0)
		phi := 2*math.Atan(tp*math.Pow((1+esinphi)/(1-esinphi), 0.5*c.e)) - halfPi
		if math.Abs(phi-phi0) < iterationTolerance {
			return lon, phi, nil
		}
		phi0 = phi
	}
	return math.NaN(), math.NaN(), &NonConvergenceError{Method: "stereographic inverse latitude", Iterations: maxIterations}
}

// epsgTolerance is the convergence criterion of the inverse EPSG
// alternative latitude.
const epsgTolerance = 1e-14

func (c *constants) setEPSG(p Parameters) {
	sinphi0, cosphi0 := math.Sincos(p.latitudeOfOrigin)
	cos2 := cosphi0 * cosphi0
	c.r2 = 2 * math.Sqrt(1-p.es) / (1 - p.es*sinphi0*sinphi0)
	c.c = math.Sqrt(1 + p.es*cos2*cos2/(1-p.es))
	c.phic0 = math.Asin(sinphi0 / c.c)
	c.sinc0, c.cosc0 = math.Sincos(c.phic0)
	c.ratexp = 0.5 * c.c * p.e
	c.k = math.Tan(0.5*c.phic0+quartPi) /
		(math.Pow(math.Tan(0.5*p.latitudeOfOrigin+quartPi), c.c) * srat(p.e*sinphi0, c.ratexp))
}

func epsgForward(c *constants, x, y float64) (float64, float64, error) {
	// The conformal sphere stretches longitudes by c; beyond ±π/c the
	// inverse would wrap to the other side of the antimeridian.
	if math.Abs(x*c.c) > math.Pi {
		return math.NaN(), math.NaN(), &PointOutsideDomainError{
			Axis: "longitude from the central meridian", Value: x * rad2deg, Limit: 180 / c.c}
	}
	y = 2*math.Atan(c.k*math.Pow(math.Tan(0.5*y+quartPi), c.c)*srat(c.e*math.Sin(y), c.ratexp)) - halfPi
	x *= c.c
	sinc, cosc := math.Sincos(y)
	cosl := math.Cos(x)
	d := 1 + c.sinc0*sinc + c.cosc0*cosc*cosl
	if d < epsilon {
		return math.NaN(), math.NaN(), &SingularityError{Projection: "oblique stereographic", Lon: x / c.c, Lat: y}
	}
	k := c.r2 / d
	return k * cosc * math.Sin(x), k * (c.cosc0*sinc - c.sinc0*cosc*cosl), nil
}

func epsgInverse(c *constants, x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	if math.Abs(rho) < epsilon {
		x, y = 0, c.phic0
	} else {
		sinc, cosc := math.Sincos(2 * math.Atan2(rho, c.r2))
		x = math.Atan2(x*sinc, rho*c.cosc0*cosc-y*c.sinc0*sinc)
		y = asin(cosc*c.sinc0 + y*sinc*c.cosc0/rho)
	}
	x /= c.c
	num := math.Pow(math.Tan(0.5*y+quartPi)/c.k, 1/c.c)
	for i := 0; i < maxIterations; i++ {
		phi := 2*math.Atan(num*srat(c.e*math.Sin(y), -0.5*c.e)) - halfPi
		if math.Abs(phi-y) < epsgTolerance {
			return x, phi, nil
		}
		y = phi
	}
	return math.NaN(), math.NaN(), &NonConvergenceError{Method: "oblique stereographic inverse latitude", Iterations: maxIterations}
}

// asin is math.Asin with its argument clamped to [-1, 1].
func asin(v float64) float64 {
	if v >= 1 {
		return halfPi
	}
	if v <= -1 {
		return -halfPi
	}
	return math.Asin(v)
}
