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

// Parameters holds the validated parameters shared by every projection,
// along with the ellipsoid quantities derived from them. Angles are held
// in radians. A Parameters value is immutable.
type Parameters struct {
	semiMajor, semiMinor float64

	centralMeridian, latitudeOfOrigin float64

	scaleFactor                 float64
	falseEasting, falseNorthing float64

	// es is the squared eccentricity and e the eccentricity.
	es, e float64

	spherical   bool
	globalScale float64
}

// NewParameters validates the common projection parameters held in v.
func NewParameters(v param.Values) (Parameters, error) {
	var p Parameters
	var err error
	lookup := func(d param.Descriptor) float64 {
		if err != nil {
			return math.NaN()
		}
		var val float64
		val, err = v.Lookup(d)
		return val
	}
	a := lookup(param.SemiMajor)
	b := lookup(param.SemiMinor)
	cm := lookup(param.CentralMeridian)
	lat0 := lookup(param.LatitudeOfOrigin)
	k := lookup(param.ScaleFactor)
	fe := lookup(param.FalseEasting)
	fn := lookup(param.FalseNorthing)
	if err != nil {
		return p, err
	}
	if b > a {
		return p, &param.InvalidParameterError{Name: param.SemiMinor.Name, Value: b, Min: 0, Max: a}
	}
	return newParameters(a, b, cm*deg2rad, lat0*deg2rad, k, fe, fn), nil
}

func newParameters(a, b, cm, lat0, k, fe, fn float64) Parameters {
	p := Parameters{
		semiMajor:        a,
		semiMinor:        b,
		centralMeridian:  cm,
		latitudeOfOrigin: lat0,
		scaleFactor:      k,
		falseEasting:     fe,
		falseNorthing:    fn,
	}
	p.spherical = a == b
	if !p.spherical {
		r := b / a
		p.es = 1 - r*r
		p.e = math.Sqrt(p.es)
	}
	p.globalScale = a * k
	return p
}

// withLatitudeOfOrigin returns a copy of p with a different latitude of
// origin, in radians.
func (p Parameters) withLatitudeOfOrigin(lat0 float64) Parameters {
	p.latitudeOfOrigin = lat0
	return p
}

// withScaleFactor returns a copy of p with a different scale factor.
func (p Parameters) withScaleFactor(k float64) Parameters {
	p.scaleFactor = k
	p.globalScale = p.semiMajor * k
	return p
}

// SemiMajor returns the length of the semi-major axis.
func (p Parameters) SemiMajor() float64 { return p.semiMajor }

// SemiMinor returns the length of the semi-minor axis.
func (p Parameters) SemiMinor() float64 { return p.semiMinor }

// CentralMeridian returns the central meridian in degrees.
func (p Parameters) CentralMeridian() float64 { return p.centralMeridian * rad2deg }

// LatitudeOfOrigin returns the latitude of origin in degrees.
func (p Parameters) LatitudeOfOrigin() float64 { return p.latitudeOfOrigin * rad2deg }

// ScaleFactor returns the scale factor at the natural origin.
func (p Parameters) ScaleFactor() float64 { return p.scaleFactor }

// FalseEasting returns the false easting.
func (p Parameters) FalseEasting() float64 { return p.falseEasting }

// FalseNorthing returns the false northing.
func (p Parameters) FalseNorthing() float64 { return p.falseNorthing }

// Eccentricity returns the first eccentricity of the ellipsoid.
func (p Parameters) Eccentricity() float64 { return p.e }

// EccentricitySquared returns the squared first eccentricity.
func (p Parameters) EccentricitySquared() float64 { return p.es }

// Spherical reports whether both axes have the same length.
func (p Parameters) Spherical() bool { return p.spherical }

// GlobalScale returns the semi-major axis multiplied by the scale factor.
func (p Parameters) GlobalScale() float64 { return p.globalScale }

// identity returns the values that make two parameter sets equal, in the
// order of param.Common.
func (p Parameters) identity() []float64 {
	return []float64{
		p.semiMajor, p.semiMinor,
		p.centralMeridian, p.latitudeOfOrigin,
		p.scaleFactor, p.falseEasting, p.falseNorthing,
	}
}
