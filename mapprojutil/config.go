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

package mapprojutil

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/mapproj"
	"github.com/spatialmodel/mapproj/param"
)

var (
	factoryMu   sync.Mutex
	factory     *mapproj.Factory
	factorySize int
)

// projectionFactory returns the factory that caches the projections
// created from the configuration. It is replaced when size changes.
func projectionFactory(size int) (*mapproj.Factory, error) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	if factory == nil || size != factorySize {
		f, err := mapproj.NewFactory(size)
		if err != nil {
			return nil, err
		}
		factory, factorySize = f, size
	}
	return factory, nil
}

// projection returns the projection specified by the proj option, or
// by the method and params options if proj is empty.
func projection(cfg *viper.Viper) (*mapproj.Projection, error) {
	f, err := projectionFactory(cfg.GetInt("CacheSize"))
	if err != nil {
		return nil, err
	}
	if def := cfg.GetString("proj"); def != "" {
		return f.Parse(def)
	}
	v, err := parameterValues(cfg.Get("params"))
	if err != nil {
		return nil, err
	}
	return f.New(cfg.GetString("method"), v)
}

// parameterValues converts the params option, which is a JSON object
// when it comes from a flag or an environment variable and a table when
// it comes from a configuration file.
func parameterValues(raw interface{}) (param.Values, error) {
	var m map[string]interface{}
	switch r := raw.(type) {
	case nil:
	case string:
		if r == "" {
			break
		}
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, errors.Wrap(err, "mapproj: parsing params")
		}
	default:
		var err error
		m, err = cast.ToStringMapE(r)
		if err != nil {
			return nil, errors.Wrap(err, "mapproj: reading params")
		}
	}
	return param.FromMap(m)
}

// projectionConfig is the configuration file representation of a
// projection.
type projectionConfig struct {
	Method string             `toml:"method"`
	Params map[string]float64 `toml:"params"`
}

// WriteConfig writes p to w as a TOML configuration file that can be read
// back with the --config flag.
func WriteConfig(w io.Writer, p *mapproj.Projection) error {
	c := projectionConfig{
		Method: p.Name(),
		Params: p.ParameterValues(),
	}
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "mapproj: writing configuration")
}

// openInput opens the named file, or standard input if path is empty
// or "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, errors.Wrap(err, "mapproj: opening input")
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// createOutput creates the named file, or returns the output of cmd if
// path is empty or "-".
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(os.ExpandEnv(path))
	if err != nil {
		return nil, errors.Wrap(err, "mapproj: creating output")
	}
	return f, nil
}
