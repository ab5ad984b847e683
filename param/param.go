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

// Package param describes the named numeric parameters that define a map
// projection: their names, units, defaults and valid ranges, and the sets of
// values supplied by callers.
package param

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Unit is the kind of quantity a parameter holds.
type Unit int

const (
	// Linear values are lengths in the unit of the ellipsoid axes,
	// typically meters.
	Linear Unit = iota
	// Angular values are angles in decimal degrees.
	Angular
	// Scale values are unitless multipliers.
	Scale
)

func (u Unit) String() string {
	switch u {
	case Linear:
		return "linear"
	case Angular:
		return "degree"
	case Scale:
		return "unity"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Descriptor describes a single named parameter.
type Descriptor struct {
	// Name is the canonical (OGC) name of the parameter.
	Name string

	// Aliases are other names the parameter may be supplied under.
	Aliases []string

	Unit Unit

	// Required parameters have no default; looking them up in a set
	// that does not hold them fails with a *MissingParameterError.
	Required bool

	// Default is returned for optional parameters that were not supplied.
	// A NaN default means the value is derived from other parameters.
	Default float64

	// Min and Max are the inclusive bounds of the valid range.
	Min, Max float64

	// Positive excludes zero and negative values.
	Positive bool
}

// Check returns an error if v is outside of the valid range of d.
// NaN is never valid.
func (d Descriptor) Check(v float64) error {
	if !(v >= d.Min && v <= d.Max) || (d.Positive && !(v > 0)) {
		return &InvalidParameterError{Name: d.Name, Value: v, Min: d.Min, Max: d.Max}
	}
	return nil
}

// Is reports whether name refers to d, either by its name or by one of
// its aliases. Comparison is case insensitive.
func (d Descriptor) Is(name string) bool {
	if strings.EqualFold(d.Name, name) {
		return true
	}
	for _, a := range d.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// The parameters shared by every projection.
var (
	SemiMajor = Descriptor{
		Name: "semi_major", Aliases: []string{"a", "semi_major_axis"},
		Unit: Linear, Required: true,
		Min: 0, Max: math.Inf(1), Positive: true,
	}
	SemiMinor = Descriptor{
		Name: "semi_minor", Aliases: []string{"b", "semi_minor_axis"},
		Unit: Linear, Required: true,
		Min: 0, Max: math.Inf(1), Positive: true,
	}
	CentralMeridian = Descriptor{
		Name: "central_meridian", Aliases: []string{"lon_0", "longitude_of_origin", "longitude_of_center"},
		Unit: Angular, Min: -180, Max: 180,
	}
	LatitudeOfOrigin = Descriptor{
		Name: "latitude_of_origin", Aliases: []string{"lat_0", "latitude_of_center"},
		Unit: Angular, Min: -90, Max: 90,
	}
	ScaleFactor = Descriptor{
		Name: "scale_factor", Aliases: []string{"k", "k_0"},
		Unit: Scale, Default: 1,
		Min: 0, Max: math.Inf(1), Positive: true,
	}
	FalseEasting = Descriptor{
		Name: "false_easting", Aliases: []string{"x_0"},
		Unit: Linear, Min: math.Inf(-1), Max: math.Inf(1),
	}
	FalseNorthing = Descriptor{
		Name: "false_northing", Aliases: []string{"y_0"},
		Unit: Linear, Min: math.Inf(-1), Max: math.Inf(1),
	}

	// StandardParallel is the latitude of true scale used by the
	// polar stereographic projection. By default it is derived from the
	// latitude of origin.
	StandardParallel = Descriptor{
		Name: "standard_parallel_1", Aliases: []string{"lat_ts", "latitude_true_scale"},
		Unit: Angular, Default: math.NaN(), Min: -90, Max: 90,
	}
)

// Common holds the descriptors every projection accepts, in the order
// they are reported.
var Common = []Descriptor{
	SemiMajor, SemiMinor, CentralMeridian, LatitudeOfOrigin,
	ScaleFactor, FalseEasting, FalseNorthing,
}

// Group is a named collection of descriptors: the parameter schema of one
// projection method.
type Group struct {
	Name        string
	Aliases     []string
	Descriptors []Descriptor
}

// Names returns the name and aliases of g.
func (g Group) Names() []string {
	return append([]string{g.Name}, g.Aliases...)
}

// Descriptor returns the descriptor in g that name refers to.
func (g Group) Descriptor(name string) (Descriptor, bool) {
	for _, d := range g.Descriptors {
		if d.Is(name) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Values is a set of named parameter values. Angles are in degrees.
type Values map[string]float64

// Lookup returns the value of d held in v under its name or one of its
// aliases, or the default value if d is optional and v does not hold it.
// Supplied values are checked against the valid range of d.
func (v Values) Lookup(d Descriptor) (float64, error) {
	val, ok := v.find(d)
	if !ok {
		if d.Required {
			return math.NaN(), &MissingParameterError{Name: d.Name}
		}
		return d.Default, nil
	}
	if err := d.Check(val); err != nil {
		return math.NaN(), err
	}
	return val, nil
}

// Has reports whether v holds a value for d.
func (v Values) Has(d Descriptor) bool {
	_, ok := v.find(d)
	return ok
}

func (v Values) find(d Descriptor) (float64, bool) {
	if val, ok := v[d.Name]; ok {
		return val, true
	}
	for _, name := range v.sortedNames() {
		if d.Is(name) {
			return v[name], true
		}
	}
	return 0, false
}

func (v Values) sortedNames() []string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	o := make(Values, len(v))
	for k, val := range v {
		o[k] = val
	}
	return o
}

// Canonical returns a copy of v keyed by the canonical names of the
// descriptors in ds. Values whose names do not match any descriptor are
// kept under their original name.
func (v Values) Canonical(ds []Descriptor) Values {
	o := make(Values, len(v))
	for _, name := range v.sortedNames() {
		key := name
		for _, d := range ds {
			if d.Is(name) {
				key = d.Name
				break
			}
		}
		if _, ok := o[key]; !ok || key == name {
			o[key] = v[name]
		}
	}
	return o
}
