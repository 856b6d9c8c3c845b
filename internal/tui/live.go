// Package tui is the interactive scene viewer. It drives the render
// facade from a Bubble Tea event loop: every tick updates the camera
// through SetView, and the b key swaps the whole rendering backend
// under the viewer while it runs.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
)

const spinStep = 2.0 // degrees per tick

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the viewer state: one scene on the active backend and the
// camera parameters mirrored locally so partial view updates can be
// sent as deltas.
type Model struct {
	shape     string
	fig       render.FigureConfig
	scene     render.Scene
	azimuth   float64
	elevation float64
	distance  float64
	spinning  bool
	err       error
}

// NewModel creates a scene for the named shape on the active backend.
func NewModel(shape string, fig render.FigureConfig) (Model, error) {
	m := Model{
		shape:     shape,
		fig:       fig,
		azimuth:   45,
		elevation: 30,
		distance:  6,
		spinning:  true,
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// rebuild creates a fresh scene on whatever backend is currently
// active. Called at start and after every backend switch, since scenes
// cannot cross backends.
func (m *Model) rebuild() error {
	scene, err := render.CreateFigure(m.fig)
	if err != nil {
		return err
	}
	wf, err := geom.Shape(m.shape)
	if err != nil {
		return err
	}
	if err := render.Draw(scene, wf); err != nil {
		return err
	}
	if err := render.SetTitle(scene, m.shape, 0); err != nil {
		return err
	}
	m.scene = scene
	return m.applyView()
}

func (m *Model) applyView() error {
	return render.SetView(m.scene, render.View{
		Azimuth:   render.Float(m.azimuth),
		Elevation: render.Float(m.elevation),
		Distance:  render.Float(m.distance),
	})
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.spinning = !m.spinning
		case "left", "h":
			m.azimuth -= 5
			m.err = m.applyView()
		case "right", "l":
			m.azimuth += 5
			m.err = m.applyView()
		case "up", "k":
			m.elevation = clampF(m.elevation+5, -85, 85)
			m.err = m.applyView()
		case "down", "j":
			m.elevation = clampF(m.elevation-5, -85, 85)
			m.err = m.applyView()
		case "+", "=":
			m.distance = clampF(m.distance/1.2, 1, 100)
			m.err = m.applyView()
		case "-":
			m.distance = clampF(m.distance*1.2, 1, 100)
			m.err = m.applyView()
		case "b":
			m.err = m.cycleBackend()
		}
	case TickMsg:
		if m.spinning {
			m.azimuth += spinStep
			if m.azimuth >= 360 {
				m.azimuth -= 360
			}
			m.err = m.applyView()
		}
		return m, tick()
	}
	return m, nil
}

// cycleBackend switches to the next registered backend and rebuilds the
// scene there. The switch is atomic in the facade; on failure the old
// backend and scene stay live.
func (m *Model) cycleBackend() error {
	names := render.Names()
	if len(names) < 2 {
		return nil
	}
	current := render.GetBackend()
	next := names[0]
	for i, n := range names {
		if n == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := render.SetBackend(next); err != nil {
		return err
	}
	return m.rebuild()
}

func (m Model) View() string {
	var frame strings.Builder
	if err := render.Snapshot(m.scene, &frame); err != nil {
		return errStyle.Render(err.Error()) + helpStyle.Render("\nq: quit")
	}

	stats := []string{
		headerStyle.Render("scene3d"),
		labelStyle.Render("backend") + valueStyle.Render(render.GetBackend()),
		labelStyle.Render("shape") + valueStyle.Render(m.shape),
		labelStyle.Render("azimuth") + valueStyle.Render(fmt.Sprintf("%.0f°", m.azimuth)),
		labelStyle.Render("elevation") + valueStyle.Render(fmt.Sprintf("%.0f°", m.elevation)),
		labelStyle.Render("distance") + valueStyle.Render(fmt.Sprintf("%.1f", m.distance)),
		"",
	}
	stats = append(stats, m.axisReadout()...)
	if m.err != nil {
		stats = append(stats, "", errStyle.Render(m.err.Error()))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		frame.String(),
		statsStyle.Render(strings.Join(stats, "\n")),
	)
	help := helpStyle.Render("←/→ azimuth · ↑/↓ elevation · +/- zoom · space: spin · b: backend · q: quit")
	return body + "\n" + help
}

// axisReadout projects the axis tips through the scene's camera, a
// small live demonstration of the projection capability.
func (m Model) axisReadout() []string {
	tips := []geom.Vec3{{X: 2}, {Y: 2}, {Z: 2}}
	proj, err := render.Project(m.scene, tips)
	if err != nil {
		return []string{errStyle.Render(err.Error())}
	}
	out := make([]string, 0, len(proj))
	for i, p := range proj {
		name := [3]string{"x axis", "y axis", "z axis"}[i]
		pos := fmt.Sprintf("(%d, %d)", p.X, p.Y)
		if !p.Visible {
			pos = "off-screen"
		}
		out = append(out, labelStyle.Render(name)+valueStyle.Render(pos))
	}
	return out
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
