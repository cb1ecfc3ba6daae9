// seehuhn.de/go/contour - a 2D contouring library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package contour

import (
	"reflect"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// recordingSink logs PathSink calls for inspection.
type recordingSink struct {
	ops []string
	pts []vec.Vec2
}

func (r *recordingSink) MoveTo(p vec.Vec2) {
	r.ops = append(r.ops, "move")
	r.pts = append(r.pts, p)
}

func (r *recordingSink) LineTo(p vec.Vec2) {
	r.ops = append(r.ops, "line")
	r.pts = append(r.pts, p)
}

func (r *recordingSink) Close() {
	r.ops = append(r.ops, "close")
}

func TestSinkPathPolygon(t *testing.T) {
	var rec recordingSink
	s := SinkPath{Sink: &rec}

	shell := []vec.Vec2{vec2(0, 0), vec2(0, 1), vec2(1, 1), vec2(0, 0)}
	hole := []vec.Vec2{vec2(0.1, 0.1), vec2(0.5, 0.5), vec2(0.2, 0.1), vec2(0.1, 0.1)}
	s.Polygon(shell, [][]vec.Vec2{hole})

	wantOps := []string{
		"move", "line", "line", "close",
		"move", "line", "line", "close",
	}
	if !reflect.DeepEqual(rec.ops, wantOps) {
		t.Errorf("ops = %v, want %v", rec.ops, wantOps)
	}
	// The closing vertex is implied by Close and not repeated.
	if rec.pts[2] != vec2(1, 1) {
		t.Errorf("last shell vertex = %v, want (1,1)", rec.pts[2])
	}
}

func TestSinkPathLineString(t *testing.T) {
	var rec recordingSink
	s := SinkPath{Sink: &rec}

	s.LineString([]vec.Vec2{vec2(0, 0), vec2(1, 1), vec2(2, 1)})
	wantOps := []string{"move", "line", "line"}
	if !reflect.DeepEqual(rec.ops, wantOps) {
		t.Errorf("ops = %v, want %v", rec.ops, wantOps)
	}
}

func TestPathWriter(t *testing.T) {
	w := NewPathWriter()
	w.Polygon([]vec.Vec2{vec2(0, 0), vec2(0, 2), vec2(2, 2), vec2(0, 0)}, nil)
	w.LineString([]vec.Vec2{vec2(3, 3), vec2(4, 4)})

	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}
	if !reflect.DeepEqual(w.Path.Cmds, wantCmds) {
		t.Errorf("commands = %v, want %v", w.Path.Cmds, wantCmds)
	}
}

func TestPathWriterCTM(t *testing.T) {
	w := NewPathWriter()
	w.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1}
	w.LineString([]vec.Vec2{vec2(0, 0), vec2(1, 0)})

	if len(w.Path.Coords) != 2 {
		t.Fatalf("got %d coordinates, want 2", len(w.Path.Coords))
	}
	if w.Path.Coords[0] != vec2(1, 1) || w.Path.Coords[1] != vec2(3, 1) {
		t.Errorf("transformed coordinates = %v", w.Path.Coords)
	}
}

func TestContourIntoPath(t *testing.T) {
	// The full pipeline: contour a band straight into a path.Data.
	c := NewContourer(pulseField())
	w := NewPathWriter()
	if err := c.Fill(w, 0.25, 0.75); err != nil {
		t.Fatal(err)
	}
	if len(w.Path.Cmds) == 0 {
		t.Fatal("no path commands produced")
	}
	if w.Path.Cmds[len(w.Path.Cmds)-1] != path.CmdClose {
		t.Error("fill output must end with a closed subpath")
	}
}
