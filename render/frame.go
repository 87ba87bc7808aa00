package render

import (
	"layed/core"
	"layed/editor"
	"layed/scene"
)

// Frame builds the draw-command sequence for one redraw of the session,
// covering a view of the given screen size. Pure query: nothing in the
// session is mutated.
func Frame(s *editor.Session, viewW, viewH float64) []Command {
	var cmds []Command
	cmds = appendGrid(cmds, s, viewW, viewH)
	cmds = appendInfluenceZones(cmds, s)
	influenced := influencedIDs(s)
	cmds = appendObjects(cmds, s, influenced)
	cmds = appendCurrent(cmds, s)
	cmds = appendSelectionRect(cmds, s)
	return cmds
}

// appendGrid emits the background grid lines at the current cell size.
func appendGrid(cmds []Command, s *editor.Session, viewW, viewH float64) []Command {
	cell := float64(s.Mapper().CellSize())
	for x := 0.0; x <= viewW; x += cell {
		cmds = append(cmds, Command{
			Op:     OpLine,
			From:   core.Point{X: x, Y: 0},
			To:     core.Point{X: x, Y: viewH},
			Stroke: gridLineColor,
		})
	}
	for y := 0.0; y <= viewH; y += cell {
		cmds = append(cmds, Command{
			Op:     OpLine,
			From:   core.Point{X: 0, Y: y},
			To:     core.Point{X: viewW, Y: y},
			Stroke: gridLineColor,
		})
	}
	return cmds
}

// appendInfluenceZones draws the influence disc of every placed object that
// has one. Zones sit under the objects themselves.
func appendInfluenceZones(cmds []Command, s *editor.Session) []Command {
	m := s.Mapper()
	for _, o := range s.Scene().Objects() {
		center, radius, ok := scene.InfluenceCircle(m, o)
		if !ok {
			continue
		}
		cmds = append(cmds, Command{
			Op:     OpEllipse,
			Rect:   core.Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius},
			Fill:   influenceFillColor,
			Stroke: influenceLineColor,
		})
	}
	return cmds
}

// influencedIDs collects the objects whose centers fall inside the influence
// of the pending object or of any selected object.
func influencedIDs(s *editor.Session) map[string]bool {
	m := s.Mapper()
	sc := s.Scene()
	out := make(map[string]bool)
	sources := sc.Selected()
	if cur := s.Current(); cur != nil {
		sources = append(sources, cur)
	}
	for _, src := range sources {
		for _, o := range sc.Influenced(m, src) {
			if o.ID != src.ID {
				out[o.ID] = true
			}
		}
	}
	return out
}

// appendObjects draws the placed objects in insertion order so later objects
// render on top, matching hit-test priority.
func appendObjects(cmds []Command, s *editor.Session, influenced map[string]bool) []Command {
	m := s.Mapper()
	sc := s.Scene()
	for _, o := range sc.Objects() {
		r := m.ScreenRect(o)
		border := objectBorderColor
		width := 1.0
		switch {
		case sc.IsSelected(o):
			border = selectionColor
			width = 2
		case influenced[o.ID]:
			border = influencedColor
			width = 2
		}
		cmds = append(cmds, Command{Op: OpRect, Rect: r, Fill: o.Color, Stroke: border, StrokeWidth: width})
		if o.Icon != "" {
			cmds = append(cmds, Command{Op: OpImage, Rect: r, Image: o.Icon})
		}
		if o.Label != "" {
			cmds = append(cmds, Command{Op: OpText, At: core.Point{X: r.X + 2, Y: r.Y + 2}, Text: o.Label, Fill: labelColor})
		}
	}
	return cmds
}

// appendCurrent draws the pending placement at reduced alpha, with its own
// influence circle so the user can see what it would cover.
func appendCurrent(cmds []Command, s *editor.Session) []Command {
	cur := s.Current()
	if cur == nil {
		return cmds
	}
	m := s.Mapper()
	if center, radius, ok := scene.InfluenceCircle(m, cur); ok {
		cmds = append(cmds, Command{
			Op:     OpEllipse,
			Rect:   core.Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius},
			Stroke: influenceLineColor,
		})
	}
	r := m.ScreenRect(cur)
	cmds = append(cmds, Command{
		Op:          OpRect,
		Rect:        r,
		Fill:        cur.Color.WithAlpha(pendingAlpha),
		Stroke:      objectBorderColor,
		StrokeWidth: 1,
	})
	if cur.Icon != "" {
		cmds = append(cmds, Command{Op: OpImage, Rect: r, Image: cur.Icon})
	}
	return cmds
}

// appendSelectionRect draws the live rubber-band rectangle, when active.
func appendSelectionRect(cmds []Command, s *editor.Session) []Command {
	r, active := s.SelectionRect()
	if !active {
		return cmds
	}
	return append(cmds, Command{
		Op:          OpRect,
		Rect:        r,
		Fill:        selectionFillColor,
		Stroke:      selectionColor,
		StrokeWidth: 1,
	})
}
