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
	"sort"
	"strings"

	"github.com/spatialmodel/mapproj/param"
)

type provider struct {
	group  param.Group
	create func(g param.Group, v param.Values) (*Projection, error)
}

// providers holds the registered projection methods keyed by lower case
// name and alias.
var providers = make(map[string]*provider)

func register(g param.Group, create func(param.Group, param.Values) (*Projection, error)) {
	p := &provider{group: g, create: create}
	for _, name := range g.Names() {
		key := strings.ToLower(name)
		if _, ok := providers[key]; ok {
			panic(fmt.Sprintf("mapproj: projection method %q registered twice", name))
		}
		providers[key] = p
	}
}

func lookupProvider(name string) (*provider, error) {
	p, ok := providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("mapproj: unsupported projection method %q", name)
	}
	return p, nil
}

// New creates a projection from the name (or an alias) of a projection
// method and its parameter values. Names are case insensitive.
func New(name string, v param.Values) (*Projection, error) {
	p, err := lookupProvider(name)
	if err != nil {
		return nil, err
	}
	return p.create(p.group, v)
}

// Parse creates a projection from a PROJ.4 or WKT definition.
func Parse(def string) (*Projection, error) {
	name, v, err := param.FromProjString(def)
	if err != nil {
		return nil, err
	}
	return New(name, v)
}

// Providers returns the canonical names of the supported projection
// methods in alphabetical order.
func Providers() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range providers {
		if !seen[p.group.Name] {
			seen[p.group.Name] = true
			names = append(names, p.group.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Group returns the parameter group of the named projection method.
func Group(name string) (param.Group, error) {
	p, err := lookupProvider(name)
	if err != nil {
		return param.Group{}, err
	}
	return p.group, nil
}
