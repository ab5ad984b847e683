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
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/proj"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/mapproj"
)

func formatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

// transformPoint applies t to the point held in args and prints the
// result.
func transformPoint(cmd *cobra.Command, t proj.Transformer, args []string) error {
	x, err := cast.ToFloat64E(args[0])
	if err != nil {
		return errors.Wrapf(err, "mapproj: invalid coordinate %q", args[0])
	}
	y, err := cast.ToFloat64E(args[1])
	if err != nil {
		return errors.Wrapf(err, "mapproj: invalid coordinate %q", args[1])
	}
	rx, ry, err := t(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatFloat(rx, 64), formatFloat(ry, 64))
	return nil
}

// Batch reads points from the first two columns of the CSV data in r,
// transforms them with t and writes them to w as CSV. If the first row
// does not hold numbers it is treated as a header. With single set the
// points are transformed in single precision. Points that fail are
// written as NaN and reported in the log.
func Batch(r io.Reader, w io.Writer, t mapproj.Transform, single bool) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return errors.Wrap(err, "mapproj: reading CSV input")
	}
	var header bool
	pts := make([]float64, 0, 2*len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return fmt.Errorf("mapproj: CSV line %d has %d columns; at least 2 are needed", i+1, len(rec))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if i == 0 {
				header = true
				continue
			}
			return fmt.Errorf("mapproj: CSV line %d: invalid coordinates %q, %q", i+1, rec[0], rec[1])
		}
		pts = append(pts, x, y)
	}
	n := len(pts) / 2

	bitSize := 64
	var terr error
	if single {
		bitSize = 32
		pts32 := make([]float32, len(pts))
		for i, v := range pts {
			pts32[i] = float32(v)
		}
		terr = t.TransformArray32(pts32, 0, pts32, 0, n)
		for i, v := range pts32 {
			pts[i] = float64(v)
		}
	} else {
		terr = t.TransformArray(pts, 0, pts, 0, n)
	}
	if terr != nil {
		var failed int
		for i := 0; i < len(pts); i += 2 {
			if math.IsNaN(pts[i]) {
				failed++
			}
		}
		logrus.WithFields(logrus.Fields{
			"points": n,
			"failed": failed,
		}).Warnf("mapproj: some points could not be transformed: %v", terr)
	}

	cw := csv.NewWriter(w)
	if header {
		names := []string{"lon", "lat"}
		if _, forward := t.(*mapproj.Projection); forward {
			names = []string{"x", "y"}
		}
		cw.Write(names)
	}
	for i := 0; i < len(pts); i += 2 {
		cw.Write([]string{formatFloat(pts[i], bitSize), formatFloat(pts[i+1], bitSize)})
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "mapproj: writing CSV output")
}

// GeoJSON reads a GeoJSON geometry from r, transforms it with t and
// writes the result to w.
func GeoJSON(r io.Reader, w io.Writer, t proj.Transformer) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "mapproj: reading GeoJSON input")
	}
	g, err := geojson.Decode(b)
	if err != nil {
		return errors.Wrap(err, "mapproj: decoding GeoJSON")
	}
	g, err = g.Transform(t)
	if err != nil {
		return errors.Wrap(err, "mapproj: transforming geometry")
	}
	b, err = geojson.Encode(g)
	if err != nil {
		return errors.Wrap(err, "mapproj: encoding GeoJSON")
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// VerifySummary holds the outcome of Verify.
type VerifySummary struct {
	// Checked is the number of points that were projected and
	// converted back.
	Checked int

	// Skipped is the number of points that could not be projected.
	Skipped int

	// Failed is the number of checked points where the projection
	// and its inverse disagree.
	Failed int
}

// Verify checks p at every point of a global grid with the given spacing
// in degrees, logging each point that fails.
func Verify(p *mapproj.Projection, step float64, log logrus.FieldLogger) (VerifySummary, error) {
	var s VerifySummary
	if !(step > 0) {
		return s, fmt.Errorf("mapproj: verification step must be positive; have %g", step)
	}
	for lat := -90.; lat <= 90; lat += step {
		for lon := -180.; lon <= 180; lon += step {
			err := p.Verify(lon, lat)
			var ce *mapproj.ConsistencyError
			switch {
			case err == nil:
				s.Checked++
			case errors.As(err, &ce):
				s.Checked++
				s.Failed++
				log.WithFields(logrus.Fields{
					"lon":      lon,
					"lat":      lat,
					"distance": ce.Distance,
				}).Warn(err)
			default:
				s.Skipped++
				log.WithFields(logrus.Fields{
					"lon": lon,
					"lat": lat,
				}).Debugf("mapproj: skipping point: %v", err)
			}
		}
	}
	return s, nil
}
