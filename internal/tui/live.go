// Package tui provides the live terminal view: the model steps in real
// time while the surface heatmap and width history update in place.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/surfgrow/internal/growth"
	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/noise"
	"github.com/san-kum/surfgrow/internal/viz"
)

const historyCapacity = 400

type TickMsg time.Time

// Model carries the simulation and view state for the live session.
type Model struct {
	model     growth.Model
	field     *lattice.Field
	initial   *lattice.Field
	gen       *noise.Generator
	noiseKind noise.Kind
	noiseSeed int64

	step     int
	running  bool
	showHelp bool
	stepErr  error

	widths    []float64
	params    map[string]float64
	paramKeys []string
	selected  int

	fps int
}

// NewModel initializes a live session over the given model and start field.
func NewModel(m growth.Model, f0 *lattice.Field, kind noise.Kind, seed int64, fps int) (Model, error) {
	gen, err := noise.New(kind, f0.Len(), seed)
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 30
	}

	params := make(map[string]float64)
	if c, ok := m.(growth.Configurable); ok {
		for k, v := range c.Params() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Model{
		model:     m,
		field:     f0.Clone(),
		initial:   f0.Clone(),
		gen:       gen,
		noiseKind: kind,
		noiseSeed: seed,
		running:   true,
		widths:    make([]float64, 0, historyCapacity),
		params:    params,
		paramKeys: keys,
		fps:       fps,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.stepErr == nil {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	next, err := m.model.Step(m.field, m.gen.Slice())
	if err != nil {
		m.stepErr = err
		m.running = false
		return
	}
	if !next.IsValid() {
		m.stepErr = lattice.ErrFieldDiverged
		m.running = false
		return
	}
	m.field = next
	m.step++

	m.widths = append(m.widths, m.field.Roughness())
	if len(m.widths) > historyCapacity {
		m.widths = m.widths[1:]
	}
}

func (m *Model) reset() {
	m.field = m.initial.Clone()
	m.gen, _ = noise.New(m.noiseKind, m.initial.Len(), m.noiseSeed)
	m.step = 0
	m.stepErr = nil
	m.widths = m.widths[:0]
	m.running = true
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	c, ok := m.model.(growth.Configurable)
	if !ok {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.params[key]
	if val == 0 {
		val = 0.01 // multiplicative editing needs a foothold
	}
	newVal := val * factor
	if err := c.SetParam(key, newVal); err != nil {
		return
	}
	m.params[key] = newVal
}

func (m Model) View() string {
	header := viz.HeaderStyle.Render(fmt.Sprintf("surfgrow live — %s", m.model.Name()))

	heat := viz.StyledHeatmap(m.field)

	var graph string
	if len(m.widths) >= 2 {
		graph = viz.GraphStyle.Render(asciigraph.Plot(m.widths,
			asciigraph.Height(8),
			asciigraph.Width(48),
			asciigraph.Caption("interface width"),
		))
	}

	side := lipgloss.JoinVertical(lipgloss.Left, m.statsView(), graph)
	body := lipgloss.JoinHorizontal(lipgloss.Top, heat, "  ", side)

	help := viz.HelpStyle.Render("space pause · r reset · tab/↑/↓ params · ? help · q quit")
	if m.showHelp {
		help = viz.HelpStyle.Render(strings.Join([]string{
			"space  pause/resume",
			"r      reset to initial field",
			"tab    select parameter",
			"↑/k    increase selected parameter",
			"↓/j    decrease selected parameter",
			"q      quit",
		}, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (m Model) statsView() string {
	var sb strings.Builder

	status := viz.StatusRunning.Render("running")
	if m.stepErr != nil {
		status = viz.StatusPaused.Render("halted: " + m.stepErr.Error())
	} else if !m.running {
		status = viz.StatusPaused.Render("paused")
	}
	sb.WriteString(status + "\n\n")

	line := func(label string, value string) {
		sb.WriteString(viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value) + "\n")
	}
	line("step", fmt.Sprintf("%d", m.step))
	line("noise", string(m.noiseKind))
	line("mean height", fmt.Sprintf("%.4f", m.field.Mean()))
	line("width", fmt.Sprintf("%.4f", m.field.Roughness()))
	line("total mass", fmt.Sprintf("%.2f", m.field.Sum()))

	if len(m.paramKeys) > 0 {
		sb.WriteString("\n")
		for i, k := range m.paramKeys {
			text := fmt.Sprintf("%-8s %.4f", k, m.params[k])
			if i == m.selected {
				sb.WriteString(viz.ActiveParamStyle.Render("› "+text) + "\n")
			} else {
				sb.WriteString(viz.ValueStyle.Render("  "+text) + "\n")
			}
		}
	}

	return viz.PanelStyle.Render(sb.String())
}

// Run starts the live session and blocks until the user quits.
func Run(m growth.Model, f0 *lattice.Field, kind noise.Kind, seed int64, fps int) error {
	model, err := NewModel(m, f0, kind, seed, fps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
