package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chimera/internal/dynamo"
	"chimera/internal/kuramoto"
	"chimera/internal/synchrony"
)

const (
	graphHeight  = 12
	graphWidth   = 80
	historyLimit = 400
	stepsPerTick = 2
)

type TickMsg time.Time

// Model drives an interactive run: it owns the network, integrator and
// synchrony window, advances a few timesteps per frame, and renders the
// downsampled synchrony history plus an optional phase dial view.
type Model struct {
	params kuramoto.Params
	seed   int64
	scheme kuramoto.Scheme

	net    *kuramoto.Network
	integ  *kuramoto.Integrator
	window *synchrony.Window
	theta  dynamo.Phases
	step   int

	running  bool
	showDial bool
	failed   error
}

// NewModel seeds and builds a fresh interactive run.
func NewModel(p kuramoto.Params, scheme kuramoto.Scheme) Model {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := Model{
		params:  p,
		seed:    seed,
		scheme:  scheme,
		running: true,
	}
	m.rebuild()
	return m
}

func (m *Model) rebuild() {
	rng := rand.New(rand.NewSource(m.seed))
	m.net = kuramoto.NewNetwork(m.params, rng)
	m.integ = kuramoto.NewIntegrator(m.net, m.scheme, m.params.H)
	m.window = synchrony.NewWindow(m.params.WS, m.params.N1)
	m.theta = m.net.InitialPhases(rng)
	m.step = 0
	m.failed = nil
	m.window.Push(synchrony.OrderParameters(m.theta, m.params.N0, m.params.N1))
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "d":
			m.showDial = !m.showDial
		case "r":
			m.rebuild()
			m.running = true
		}
	case TickMsg:
		if m.running && m.failed == nil {
			for i := 0; i < stepsPerTick && m.step < m.params.TTot-1; i++ {
				m.theta = m.integ.Step(m.theta)
				m.step++
				if !m.theta.IsValid() {
					m.failed = &dynamo.SimulationError{
						Step:    m.step,
						Time:    float64(m.step),
						Wrapped: dynamo.ErrInvalidState,
					}
					break
				}
				m.window.Push(synchrony.OrderParameters(m.theta, m.params.N0, m.params.N1))
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("chimera live"))
	sb.WriteByte('\n')

	status := statusRunning.Render("running")
	switch {
	case m.failed != nil:
		status = statusDone.Render(m.failed.Error())
	case m.step >= m.params.TTot-1:
		status = statusDone.Render("finished")
	case !m.running:
		status = statusPaused.Render("paused")
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("step"),
		valueStyle.Render(fmt.Sprintf("%d / %d   %s", m.step, m.params.TTot-1, status)),
	))
	sb.WriteByte('\n')

	rows := m.window.Rows()
	if len(rows) > historyLimit {
		rows = rows[len(rows)-historyLimit:]
	}
	sb.WriteString(graphStyle.Render(SynchronyChart(rows, graphHeight, graphWidth)))
	sb.WriteByte('\n')

	stats := synchrony.Compute(m.window.Rows(), kuramoto.TransientLen/m.params.WS)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("stats"),
		valueStyle.Render(fmt.Sprintf("lambda=%.3f  chi=%.3f  phi=%.3f", stats.Lambda, stats.Chi, stats.Phi)),
	))
	sb.WriteByte('\n')

	if m.showDial {
		sb.WriteString(dialStyle.Render(DialPlot(m.theta, m.params.N0, m.params.N1, 4)))
		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render("space pause · d dials · r restart · q quit"))
	return sb.String()
}

// RunLive starts the interactive view and blocks until quit.
func RunLive(p kuramoto.Params, scheme kuramoto.Scheme) error {
	prog := tea.NewProgram(NewModel(p, scheme))
	_, err := prog.Run()
	return err
}
