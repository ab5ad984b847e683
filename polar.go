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

var polarStereographic = param.Group{
	Name: "Polar_Stereographic",
	Aliases: []string{
		"Polar_Stereographic_(variant_A)", "Polar_Stereographic_(variant_B)",
		"Polar Stereographic (variant A)", "Polar Stereographic (variant B)",
		"EPSG:9810", "EPSG:9829",
	},
	Descriptors: append(param.Common[:len(param.Common):len(param.Common)], param.StandardParallel),
}

func init() {
	register(polarStereographic, newPolarStereographic)
}

func newPolarStereographic(g param.Group, v param.Values) (*Projection, error) {
	params, err := NewParameters(v)
	if err != nil {
		return nil, err
	}
	return newPolarProjection(g, params, v)
}

// newPolarProjection creates a polar stereographic projection. The pole is
// chosen by the sign of the latitude of origin or, at the equator, of the
// standard parallel. Without a standard parallel the scale is given by
// the scale factor at the pole (variant A); otherwise the scale is true
// along the standard parallel (variant B).
func newPolarProjection(g param.Group, params Parameters, v param.Values) (*Projection, error) {
	std, err := v.Lookup(param.StandardParallel)
	if err != nil {
		return nil, err
	}
	south := params.latitudeOfOrigin < 0 || (params.latitudeOfOrigin == 0 && std < 0)
	pole := halfPi
	if south {
		pole = -halfPi
	}
	params = params.withLatitudeOfOrigin(pole)
	if math.IsNaN(std) {
		std = pole
	} else {
		std *= deg2rad
	}
	return newProjection(g, Polar, params, std), nil
}

func (c *constants) setPolar(p Parameters, standardParallel float64) {
	c.southPole = p.latitudeOfOrigin < 0
	if math.Abs(math.Abs(standardParallel)-halfPi) < epsilon {
		c.k0 = 2 / math.Sqrt(math.Pow(1+p.e, 1+p.e)*math.Pow(1-p.e, 1-p.e))
		return
	}
	s := math.Abs(standardParallel)
	sins, coss := math.Sincos(s)
	c.k0 = msfn(p.es, sins, coss) / tsfn(p.e, s, sins)
}

func polarForward(c *constants, x, y float64) (float64, float64, error) {
	sinlon, coslon := math.Sincos(x)
	if c.southPole {
		y = -y
	}
	if y < -halfPi+epsilon {
		// The opposite pole.
		return math.NaN(), math.NaN(), &SingularityError{Projection: "polar stereographic", Lon: x, Lat: y}
	}
	rho := c.k0 * tsfn(c.e, y, math.Sin(y))
	if c.southPole {
		return rho * sinlon, rho * coslon, nil
	}
	return rho * sinlon, -rho * coslon, nil
}

func polarInverse(c *constants, x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	if c.southPole {
		y = -y
	}
	lon := math.Atan2(x, -y)
	lat, err := cphi2(c.e, rho/c.k0)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	if c.southPole {
		lat = -lat
	}
	return lon, lat, nil
}
