// render.go
package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"rodrigues/config"
	"rodrigues/rotation"

	"github.com/gdamore/tcell/v2"
)

type CubeRenderer struct {
	cube            []rotation.Vector3
	axisLine        []rotation.Vector3
	axis            rotation.Vector3
	angle           float64
	speed           float64
	viewTilt        float64
	viewYaw         float64
	samples         int
	frameCount      int
	autoRotate      bool
	style           int
	palette         int
	current         rotation.Matrix
	initialViewTilt float64
	initialAxis     rotation.Vector3
}

func NewCubeRenderer(cfg *config.Config) *CubeRenderer {
	palette := 0
	for i, p := range config.Palettes {
		if p == cfg.Palette {
			palette = i
		}
	}

	cr := &CubeRenderer{
		cube:            cubeEdges(cfg.Samples),
		axis:            cfg.AxisVector(),
		speed:           cfg.Speed,
		viewTilt:        cfg.ViewTilt,
		samples:         cfg.Samples,
		autoRotate:      true,
		style:           cfg.Style % len(shadingStyles),
		palette:         palette,
		initialViewTilt: cfg.ViewTilt,
		initialAxis:     cfg.AxisVector(),
	}
	cr.setAxis(cr.axis)
	return cr
}

// cubeEdges samples the 12 edges of the cube [-1,1]³.
func cubeEdges(samples int) []rotation.Vector3 {
	if samples < 2 {
		samples = 2
	}
	pts := make([]rotation.Vector3, 0, 12*samples)
	for _, s1 := range []float64{-1, 1} {
		for _, s2 := range []float64{-1, 1} {
			for i := 0; i < samples; i++ {
				t := -1 + 2*float64(i)/float64(samples-1)
				pts = append(pts,
					rotation.Vector3{X: t, Y: s1, Z: s2},
					rotation.Vector3{X: s1, Y: t, Z: s2},
					rotation.Vector3{X: s1, Y: s2, Z: t},
				)
			}
		}
	}
	return pts
}

// axisSamples places points along the unit axis through the origin.
func axisSamples(axis rotation.Vector3, samples int) []rotation.Vector3 {
	n := axis.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	unit := axis.Scale(1 / n)
	count := 2 * samples
	pts := make([]rotation.Vector3, 0, count)
	for i := 0; i < count; i++ {
		pts = append(pts, unit.Scale(-1.6+3.2*float64(i)/float64(count-1)))
	}
	return pts
}

func (cr *CubeRenderer) setAxis(axis rotation.Vector3) {
	cr.axis = axis
	cr.axisLine = axisSamples(axis, cr.samples)
	cr.current = rotation.BuildRotationMatrix(cr.axis, cr.angle)
}

func (cr *CubeRenderer) reset() {
	cr.angle = 0
	cr.viewTilt = cr.initialViewTilt
	cr.viewYaw = 0
	cr.setAxis(cr.initialAxis)
}

func (cr *CubeRenderer) update() {
	if cr.autoRotate {
		cr.angle = math.Remainder(cr.angle+cr.speed, 2*math.Pi)
	}
	cr.current = rotation.BuildRotationMatrix(cr.axis, cr.angle)
	cr.frameCount++
}

// viewMatrix is the camera: yaw about Y, then tilt about X.
func (cr *CubeRenderer) viewMatrix() rotation.Matrix {
	return rotation.BuildRotationMatrix(rotation.UnitX, cr.viewTilt).
		Mul(rotation.BuildRotationMatrix(rotation.UnitY, cr.viewYaw))
}

// handleKey applies one key press. It returns false when the viewer should exit.
func (cr *CubeRenderer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		cr.viewTilt -= 0.15
	case tcell.KeyDown:
		cr.viewTilt += 0.15
	case tcell.KeyLeft:
		cr.viewYaw -= 0.15
	case tcell.KeyRight:
		cr.viewYaw += 0.15
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'r', 'R':
			cr.reset()
		case 'a', 'A', ' ':
			cr.autoRotate = !cr.autoRotate
		case 's', 'S':
			cr.style = (cr.style + 1) % len(shadingStyles)
		case 'p', 'P':
			cr.palette = (cr.palette + 1) % len(palettes)
		case 'x', 'X':
			cr.setAxis(rotation.UnitX)
		case 'y', 'Y':
			cr.setAxis(rotation.UnitY)
		case 'z', 'Z':
			cr.setAxis(rotation.UnitZ)
		case '+', '=':
			if cr.speed < 0.3 {
				cr.speed += 0.01
			}
		case '-', '_':
			if cr.speed > -0.3 {
				cr.speed -= 0.01
			}
		}
	}
	return true
}

// Multiple shading character sets for different visual styles
var shadingStyles = [][]rune{
	// Heavy to light blocks
	{'█', '▓', '▒', '░', '·', ' '},
	// Circle variations
	{'●', '◉', '◎', '○', '◦', '·'},
	// ASCII traditional
	{'@', '#', '%', '*', '+', '=', '-', ':', '.'},
	// Dots and marks
	{'■', '▪', '□', '▫', '·', '˙'},
}

// depthChar picks a glyph; depth 1 is nearest to the viewer.
func depthChar(depth float64, style int) rune {
	depth = clampUnit(depth)
	chars := shadingStyles[style%len(shadingStyles)]
	idx := int((1 - depth) * float64(len(chars)-1))
	return chars[idx]
}

// palettes holds three RGB stops per palette, indexed like config.Palettes.
var palettes = [][3][3]int{
	{{120, 80, 255}, {255, 150, 50}, {50, 255, 120}}, // classic
	{{50, 100, 255}, {50, 255, 200}, {255, 255, 50}}, // ocean
	{{255, 50, 80}, {255, 50, 255}, {80, 150, 255}},  // ember
	{{255, 50, 150}, {150, 255, 50}, {50, 150, 255}}, // spectrum
}

func clampUnit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampByte(v int) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int32(v)
}

// interpolateColor blends through the palette's three stops by t and dims
// by depth.
func interpolateColor(t, depth float64, palette int) tcell.Color {
	t = clampUnit(t)
	depth = clampUnit(depth)
	stops := palettes[palette%len(palettes)]

	from, to, blend := stops[0], stops[1], t*2
	if t >= 0.5 {
		from, to, blend = stops[1], stops[2], (t-0.5)*2
	}

	depthFactor := 0.2 + 0.8*depth // Range from 20% to 100% brightness
	var rgb [3]int32
	for i := range rgb {
		c := float64(from[i]) + blend*float64(to[i]-from[i])
		rgb[i] = clampByte(int(c * depthFactor))
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2])
}

type renderPoint struct {
	x, y     int
	z        float64
	char     rune
	color    tcell.Color
	priority int
}

// project maps a view-space point to screen cells. Terminal cells are about
// twice as tall as wide, so x is stretched.
func project(p rotation.Vector3, scale, centerX, centerY float64) (int, int) {
	return int(math.Round(p.X*scale*2 + centerX)), int(math.Round(-p.Y*scale + centerY))
}

func (cr *CubeRenderer) render(s tcell.Screen, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawText(s, 1, 1, style, "Rodrigues | Arrows:view A:auto X/Y/Z:axis S:style P:palette +/-:speed R:reset Q:quit")

	scale := math.Min(float64(w)/4.0, float64(h)/2.0) * 0.45
	centerX, centerY := float64(w)/2, float64(h)/2

	view := cr.viewMatrix()
	model := view.Mul(cr.current)

	var pts []renderPoint
	add := func(p rotation.Vector3, t float64, priority int, marker rune) {
		sx, sy := project(p, scale, centerX, centerY)
		if sx < 0 || sx >= w || sy < 3 || sy >= h-1 {
			return
		}
		// Points lie within radius √3 of the origin.
		depth := (p.Z + math.Sqrt(3)) / (2 * math.Sqrt(3))
		char := marker
		if char == 0 {
			char = depthChar(depth, cr.style)
		}
		pts = append(pts, renderPoint{
			x: sx, y: sy, z: p.Z,
			char: char, color: interpolateColor(t, depth, cr.palette), priority: priority,
		})
	}

	for i, p := range cr.cube {
		add(model.Apply(p), float64(i)/float64(len(cr.cube)), 1, 0)
	}
	for _, p := range cr.axisLine {
		add(view.Apply(p), 1, 2, '•')
	}

	// Far points first so near ones overwrite them.
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].priority != pts[j].priority {
			return pts[i].priority < pts[j].priority
		}
		return pts[i].z < pts[j].z
	})

	for _, p := range pts {
		s.SetContent(p.x, p.y, p.char, nil, tcell.StyleDefault.Foreground(p.color))
	}

	info := fmt.Sprintf("Axis: %v | θ: %7.2f° | det: %.12f | ortho err: %.1e | Frame: %d",
		cr.axis, cr.angle*180/math.Pi, cr.current.Det(), cr.current.OrthogonalityError(), cr.frameCount)
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

func runGraphics(cfg *config.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	renderer := NewCubeRenderer(cfg)
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)

	// Input pump; PollEvent returns nil once the screen is finalized.
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(cfg.FrameMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !renderer.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			renderer.update()
			s.Clear()
			w, h := s.Size()

			if w <= 15 || h <= 8 {
				continue
			}

			renderer.render(s, w, h)
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
