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
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spatialmodel/mapproj/internal/hash"
	"github.com/spatialmodel/mapproj/param"
)

// Transform is a coordinate transformation that can be applied to single
// points or to packed arrays of points and that can be inverted.
type Transform interface {
	// TransformPoint transforms a single point.
	TransformPoint(x, y float64) (float64, float64, error)

	// TransformArray transforms n points packed as (x0, y0, x1, y1, ...)
	// in src starting at srcOff into dst starting at dstOff. Points that
	// fail are set to NaN and the first error is returned after all
	// points have been processed. src and dst may overlap.
	TransformArray(src []float64, srcOff int, dst []float64, dstOff, n int) error

	// TransformArray32 is TransformArray for single precision arrays.
	TransformArray32(src []float32, srcOff int, dst []float32, dstOff, n int) error

	// InverseTransform returns the inverse transformation. The inverse
	// of the inverse is the original transform.
	InverseTransform() Transform
}

// Kind identifies the formulas a Projection uses.
type Kind int

const (
	// Spherical is the stereographic projection of a sphere.
	Spherical Kind = iota + 1

	// USGSOblique is the ellipsoidal oblique stereographic projection
	// of Snyder (1987), which uses a conformal sphere.
	USGSOblique

	// EPSGAlternative is the ellipsoidal oblique stereographic
	// projection of EPSG guidance note 7-2 (double stereographic).
	EPSGAlternative

	// Polar is the ellipsoidal polar stereographic projection.
	Polar

	// Mercator is the Mercator projection of an ellipsoid or a sphere.
	Mercator
)

func (k Kind) String() string {
	switch k {
	case Spherical:
		return "Spherical"
	case USGSOblique:
		return "USGSOblique"
	case EPSGAlternative:
		return "EPSGAlternative"
	case Polar:
		return "Polar"
	case Mercator:
		return "Mercator"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// constants holds the quantities each kind of projection precomputes from
// its parameters. Only the fields of the projection's kind are set.
type constants struct {
	e, es float64

	// Spherical.
	phi0, sinphi0, cosphi0 float64

	// USGSOblique.
	k0, chi1, sinChi1, cosChi1 float64

	// EPSGAlternative.
	c, k, r2, phic0, sinc0, cosc0, ratexp float64

	// Polar; k0 is shared with USGSOblique.
	southPole bool

	// Mercator.
	spherical bool
}

// Projection is a map projection from geographic coordinates in decimal
// degrees to projected coordinates in the linear unit of the ellipsoid
// axes. A Projection is immutable and safe for concurrent use.
type Projection struct {
	name   string
	group  param.Group
	kind   Kind
	params Parameters

	// standardParallel is the latitude of true scale in radians, or NaN
	// if the method takes none.
	standardParallel float64

	c constants

	inv atomic.Pointer[inverseProjection]
}

func newProjection(g param.Group, kind Kind, params Parameters, standardParallel float64) *Projection {
	p := &Projection{
		name:             g.Name,
		group:            g,
		kind:             kind,
		params:           params,
		standardParallel: standardParallel,
	}
	p.c.e, p.c.es = params.e, params.es
	switch kind {
	case Spherical:
		p.c.setSpherical(params)
	case USGSOblique:
		p.c.setUSGS(params)
	case EPSGAlternative:
		p.c.setEPSG(params)
	case Polar:
		p.c.setPolar(params, standardParallel)
	case Mercator:
		p.c.spherical = params.spherical
	default:
		panic(fmt.Sprintf("mapproj: unknown projection kind %d", kind))
	}
	return p
}

// Name returns the name of the projection method.
func (p *Projection) Name() string { return p.name }

// Kind returns the formulas p uses.
func (p *Projection) Kind() Kind { return p.kind }

// Parameters returns the parameters of p.
func (p *Projection) Parameters() Parameters { return p.params }

// StandardParallel returns the latitude of true scale in degrees, or NaN
// if p has none.
func (p *Projection) StandardParallel() float64 { return p.standardParallel * rad2deg }

// Forward projects a geographic point (longitude and latitude in decimal
// degrees) into projected coordinates. Its signature matches
// proj.Transformer, so it can be passed to geom.Geom.Transform.
func (p *Projection) Forward(lon, lat float64) (x, y float64, err error) {
	x, y, err = p.forward(lon, lat)
	if checkTransforms && err == nil {
		if cerr := p.checkForward(lon, lat, x, y); cerr != nil {
			panic(cerr)
		}
	}
	return x, y, err
}

// Inverse converts projected coordinates back into longitude and latitude
// in decimal degrees.
func (p *Projection) Inverse(x, y float64) (lon, lat float64, err error) {
	lon, lat, err = p.inverse(x, y)
	if checkTransforms && err == nil {
		if cerr := p.checkInverse(x, y, lon, lat); cerr != nil {
			panic(cerr)
		}
	}
	return lon, lat, err
}

func (p *Projection) forward(lon, lat float64) (float64, float64, error) {
	if err := checkDomain(lon, lat); err != nil {
		return math.NaN(), math.NaN(), err
	}
	lam := lon*deg2rad - p.params.centralMeridian
	if p.params.centralMeridian != 0 {
		lam = rollLongitude(lam)
	}
	x, y, err := p.forwardNormalized(lam, lat*deg2rad)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	return p.params.globalScale*x + p.params.falseEasting,
		p.params.globalScale*y + p.params.falseNorthing, nil
}

func (p *Projection) inverse(x, y float64) (float64, float64, error) {
	x = (x - p.params.falseEasting) / p.params.globalScale
	y = (y - p.params.falseNorthing) / p.params.globalScale
	lam, phi, err := p.inverseNormalized(x, y)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	lam += p.params.centralMeridian
	if p.params.centralMeridian != 0 {
		lam = rollLongitude(lam)
	}
	lon, lat := lam*rad2deg, phi*rad2deg
	if err := checkDomain(lon, lat); err != nil {
		return math.NaN(), math.NaN(), err
	}
	return lon, lat, nil
}

// checkDomain returns an error if lon or lat is outside of the
// geographic range. NaN passes.
func checkDomain(lon, lat float64) error {
	if lon < -180-domainTolerance || lon > 180+domainTolerance {
		return &PointOutsideDomainError{Axis: "longitude", Value: lon, Limit: 180}
	}
	if lat < -90-domainTolerance || lat > 90+domainTolerance {
		return &PointOutsideDomainError{Axis: "latitude", Value: lat, Limit: 90}
	}
	return nil
}

// forwardNormalized projects a point on the unit ellipsoid, with lam
// relative to the central meridian, both in radians.
func (p *Projection) forwardNormalized(lam, phi float64) (float64, float64, error) {
	switch p.kind {
	case Spherical:
		return sphericalForward(&p.c, lam, phi)
	case USGSOblique:
		return usgsForward(&p.c, lam, phi)
	case EPSGAlternative:
		return epsgForward(&p.c, lam, phi)
	case Polar:
		return polarForward(&p.c, lam, phi)
	case Mercator:
		return mercatorForward(&p.c, lam, phi)
	}
	panic(fmt.Sprintf("mapproj: unknown projection kind %d", p.kind))
}

// inverseNormalized is the inverse of forwardNormalized.
func (p *Projection) inverseNormalized(x, y float64) (float64, float64, error) {
	switch p.kind {
	case Spherical:
		return sphericalInverse(&p.c, x, y)
	case USGSOblique:
		return usgsInverse(&p.c, x, y)
	case EPSGAlternative:
		return epsgInverse(&p.c, x, y)
	case Polar:
		return polarInverse(&p.c, x, y)
	case Mercator:
		return mercatorInverse(&p.c, x, y)
	}
	panic(fmt.Sprintf("mapproj: unknown projection kind %d", p.kind))
}

// TransformPoint is Forward.
func (p *Projection) TransformPoint(lon, lat float64) (float64, float64, error) {
	return p.Forward(lon, lat)
}

// TransformArray projects n packed (lon, lat) points.
func (p *Projection) TransformArray(src []float64, srcOff int, dst []float64, dstOff, n int) error {
	return transformArray(p.Forward, src, srcOff, dst, dstOff, n)
}

// TransformArray32 projects n packed (lon, lat) points in single precision.
func (p *Projection) TransformArray32(src []float32, srcOff int, dst []float32, dstOff, n int) error {
	return transformArray(p.Forward, src, srcOff, dst, dstOff, n)
}

// InverseTransform returns the inverse of p. The same value is returned
// on every call.
func (p *Projection) InverseTransform() Transform {
	if inv := p.inv.Load(); inv != nil {
		return inv
	}
	p.inv.CompareAndSwap(nil, &inverseProjection{p: p})
	return p.inv.Load()
}

// inverseProjection is the inverse of a Projection.
type inverseProjection struct {
	p *Projection
}

func (t *inverseProjection) TransformPoint(x, y float64) (float64, float64, error) {
	return t.p.Inverse(x, y)
}

func (t *inverseProjection) TransformArray(src []float64, srcOff int, dst []float64, dstOff, n int) error {
	return transformArray(t.p.Inverse, src, srcOff, dst, dstOff, n)
}

func (t *inverseProjection) TransformArray32(src []float32, srcOff int, dst []float32, dstOff, n int) error {
	return transformArray(t.p.Inverse, src, srcOff, dst, dstOff, n)
}

func (t *inverseProjection) InverseTransform() Transform { return t.p }

// Equal reports whether p and o use the same method and formulas with the
// same parameters. NaN parameters are equal to each other.
func (p *Projection) Equal(o *Projection) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil || p.name != o.name || p.kind != o.kind {
		return false
	}
	a, b := p.identity(), o.identity()
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}
	return true
}

// Hash returns a digest of the method, kind and parameters of p.
// Projections that are Equal have the same hash.
func (p *Projection) Hash() string {
	return hash.Hash([2]string{p.name, hash.Floats(append([]float64{float64(p.kind)}, p.identity()...)...)})
}

func (p *Projection) identity() []float64 {
	return append(p.params.identity(), p.standardParallel)
}

// ParameterValues returns the parameters of p, keyed by their canonical
// names, with angles in degrees.
func (p *Projection) ParameterValues() param.Values {
	v := make(param.Values)
	for _, d := range p.reported() {
		v[d.Name] = p.value(d)
	}
	return v
}

// ParameterDescriptor returns a textual description of p and its
// parameters, for example
//
//	PARAM_MT["Mercator_1SP", PARAMETER["semi_major", 6378137], ...]
func (p *Projection) ParameterDescriptor() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PARAM_MT[%q", p.name)
	for _, d := range p.reported() {
		fmt.Fprintf(&b, ", PARAMETER[%q, %s]", d.Name, strconv.FormatFloat(p.value(d), 'f', -1, 64))
	}
	b.WriteString("]")
	return b.String()
}

func (p *Projection) String() string { return p.ParameterDescriptor() }

// reported returns the descriptors of the parameters p reports.
func (p *Projection) reported() []param.Descriptor {
	ds := param.Common
	if !math.IsNaN(p.standardParallel) {
		ds = append(ds[:len(ds):len(ds)], param.StandardParallel)
	}
	var out []param.Descriptor
	for _, d := range ds {
		if contains(p.group, d) {
			out = append(out, d)
		}
	}
	return out
}

// contains reports whether d belongs to the parameter group g.
// TODO: check g.Descriptor(d.Name) once callers no longer rely on every
// common parameter being reported.
func contains(g param.Group, d param.Descriptor) bool {
	return true
}

func (p *Projection) value(d param.Descriptor) float64 {
	switch d.Name {
	case param.SemiMajor.Name:
		return p.params.SemiMajor()
	case param.SemiMinor.Name:
		return p.params.SemiMinor()
	case param.CentralMeridian.Name:
		return p.params.CentralMeridian()
	case param.LatitudeOfOrigin.Name:
		return p.params.LatitudeOfOrigin()
	case param.ScaleFactor.Name:
		return p.params.ScaleFactor()
	case param.FalseEasting.Name:
		return p.params.FalseEasting()
	case param.FalseNorthing.Name:
		return p.params.FalseNorthing()
	case param.StandardParallel.Name:
		return p.StandardParallel()
	}
	return math.NaN()
}
