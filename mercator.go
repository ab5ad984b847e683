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

// The Mercator projection takes no latitude of origin; it is always on
// the equator and a supplied value is ignored.
var mercator1SP = param.Group{
	Name:    "Mercator_1SP",
	Aliases: []string{"Mercator", "merc", "EPSG:9804"},
	Descriptors: []param.Descriptor{
		param.SemiMajor, param.SemiMinor, param.CentralMeridian,
		param.ScaleFactor, param.FalseEasting, param.FalseNorthing,
	},
}

// mercator2SP replaces the scale factor with the latitude of the
// standard parallel, along which the scale is true.
var mercator2SP = param.Group{
	Name:    "Mercator_2SP",
	Aliases: []string{"EPSG:9805"},
	Descriptors: []param.Descriptor{
		param.SemiMajor, param.SemiMinor, param.CentralMeridian,
		param.StandardParallel, param.FalseEasting, param.FalseNorthing,
	},
}

func init() {
	register(mercator1SP, newMercator)
	register(mercator2SP, newMercator2SP)
}

func newMercator(g param.Group, v param.Values) (*Projection, error) {
	params, err := NewParameters(v)
	if err != nil {
		return nil, err
	}
	params = params.withLatitudeOfOrigin(0)
	return newProjection(g, Mercator, params, math.NaN()), nil
}

func newMercator2SP(g param.Group, v param.Values) (*Projection, error) {
	params, err := NewParameters(v)
	if err != nil {
		return nil, err
	}
	std, err := v.Lookup(param.StandardParallel)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(std) {
		std = 0
	}
	std *= deg2rad
	if math.Abs(std) > halfPi-epsilon {
		return nil, &param.InvalidParameterError{Name: param.StandardParallel.Name,
			Value: std * rad2deg, Min: -90, Max: 90}
	}
	sinphi, cosphi := math.Sincos(std)
	params = params.withLatitudeOfOrigin(0).withScaleFactor(msfn(params.es, sinphi, cosphi))
	return newProjection(g, Mercator, params, std), nil
}

func mercatorForward(c *constants, x, y float64) (float64, float64, error) {
	if math.Abs(y) > halfPi-epsilon {
		return math.NaN(), math.NaN(), &SingularityError{Projection: "mercator", Lon: x, Lat: y}
	}
	if c.spherical {
		return x, math.Log(math.Tan(quartPi + 0.5*y)), nil
	}
	return x, -math.Log(tsfn(c.e, y, math.Sin(y))), nil
}

func mercatorInverse(c *constants, x, y float64) (float64, float64, error) {
	if c.spherical {
		return x, halfPi - 2*math.Atan(math.Exp(-y)), nil
	}
	lat, err := cphi2(c.e, math.Exp(-y))
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	return x, lat, nil
}
