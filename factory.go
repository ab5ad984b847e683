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

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/mapproj/internal/hash"
	"github.com/spatialmodel/mapproj/param"
)

// Factory creates projections and keeps the most recently used ones so
// that requests for the same method and parameters return the same
// *Projection. A Factory is safe for concurrent use.
type Factory struct {
	// Log receives a message for every projection created.
	Log logrus.FieldLogger

	cache *lru.Cache
}

// NewFactory returns a Factory that keeps up to size projections.
func NewFactory(size int) (*Factory, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("mapproj: creating projection cache: %v", err)
	}
	return &Factory{
		Log:   logrus.StandardLogger(),
		cache: c,
	}, nil
}

// New is the cached version of the package level New function.
func (f *Factory) New(name string, v param.Values) (*Projection, error) {
	pr, err := lookupProvider(name)
	if err != nil {
		return nil, err
	}
	key := hash.Hash(struct {
		Method string
		Values param.Values
	}{
		Method: pr.group.Name,
		Values: v.Canonical(pr.group.Descriptors),
	})
	if p, ok := f.cache.Get(key); ok {
		return p.(*Projection), nil
	}
	p, err := pr.create(pr.group, v)
	if err != nil {
		return nil, err
	}
	// Another goroutine may have created the same projection meanwhile.
	if ok, _ := f.cache.ContainsOrAdd(key, p); ok {
		if cached, found := f.cache.Get(key); found {
			return cached.(*Projection), nil
		}
	}
	f.Log.WithFields(logrus.Fields{
		"method": p.Name(),
		"kind":   p.Kind(),
		"key":    key,
	}).Debug("mapproj: created projection")
	return p, nil
}

// Parse is the cached version of the package level Parse function.
func (f *Factory) Parse(def string) (*Projection, error) {
	name, v, err := param.FromProjString(def)
	if err != nil {
		return nil, err
	}
	return f.New(name, v)
}

// Len returns the number of cached projections.
func (f *Factory) Len() int { return f.cache.Len() }
