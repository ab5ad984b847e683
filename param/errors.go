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

package param

import "fmt"

// MissingParameterError is returned when a required parameter was not
// supplied.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("param: missing value for required parameter %q", e.Name)
}

// InvalidParameterError is returned when a parameter value is outside of
// its valid range.
type InvalidParameterError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("param: value %g of parameter %q is outside of the valid range [%g, %g]",
		e.Value, e.Name, e.Min, e.Max)
}
