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

// Command mapproj is a command-line interface for the mapproj map
// projection engine.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/mapproj/mapprojutil"
)

func main() {
	if err := mapprojutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
