package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/emgrid/internal/em"
	"github.com/san-kum/emgrid/internal/solver"
)

const residualHistory = 240

type progressMsg struct {
	iteration int
	delta     float64
}

type computeDoneMsg struct {
	err error
}

// LiveModel drives the live relaxation view: Compute runs on its own
// goroutine and streams each sweep's largest cell update into the UI.
// The solver never blocks on the UI; updates are dropped if the
// terminal lags behind.
type LiveModel struct {
	world      *em.World
	iterations int

	updates chan progressMsg
	result  chan error

	iteration int
	delta     float64
	history   []float64
	elapsed   time.Duration
	started   time.Time
	finished  bool
	err       error
}

func NewLiveModel(world *em.World, iterations int) *LiveModel {
	return &LiveModel{
		world:      world,
		iterations: iterations,
		updates:    make(chan progressMsg, 256),
		result:     make(chan error, 1),
		history:    make([]float64, 0, residualHistory),
	}
}

// Err returns the compute error, if any, once the view has quit.
func (m *LiveModel) Err() error { return m.err }

func (m *LiveModel) Init() tea.Cmd {
	m.started = time.Now()
	go func() {
		m.result <- m.world.ComputeWith(em.ComputeConfig{
			Iterations: m.iterations,
			Progress: func(it int, delta float64) {
				select {
				case m.updates <- progressMsg{iteration: it, delta: delta}:
				default:
				}
			},
		})
	}()
	return m.wait()
}

func (m *LiveModel) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-m.updates:
			return p
		case err := <-m.result:
			return computeDoneMsg{err: err}
		}
	}
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.iteration = msg.iteration
		m.delta = msg.delta
		m.elapsed = time.Since(m.started)
		if len(m.history) == residualHistory {
			m.history = m.history[1:]
		}
		m.history = append(m.history, msg.delta)
		return m, m.wait()

	case computeDoneMsg:
		m.finished = true
		m.err = msg.err
		m.elapsed = time.Since(m.started)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *LiveModel) View() string {
	s := HeaderStyle.Render("emgrid · relaxation") + "\n"

	total := m.iterations
	if total <= 0 {
		total = solver.DefaultIterations
	}
	s += LabelStyle.Render("iteration") + ValueStyle.Render(fmt.Sprintf("%d / %d", m.iteration, total)) + "\n"
	s += LabelStyle.Render("max update") + ValueStyle.Render(fmt.Sprintf("%.3e", m.delta)) + "\n"
	s += LabelStyle.Render("elapsed") + ValueStyle.Render(m.elapsed.Truncate(time.Millisecond).String()) + "\n"

	if len(m.history) > 1 {
		s += graphStyle.Render(asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("max cell update per sweep"),
		)) + "\n"
	}

	switch {
	case m.finished && m.err != nil:
		s += Subtle.Render("failed: "+m.err.Error()) + "\n"
	case m.finished:
		s += ValueStyle.Render("done: Biot-Savart and derived fields computed") + "\n"
	default:
		s += Subtle.Render("relaxing…") + "\n"
	}

	s += helpStyle.Render("q: quit")
	return s
}
