package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pragyan-remote/internal/adapter/dispatch"
	"pragyan-remote/internal/port"
	"pragyan-remote/internal/types"
)

// Options configures the console.
type Options struct {
	Context   context.Context
	Resolver  port.EndpointResolver
	Sender    port.CommandSender
	Results   <-chan dispatch.Result
	StreamURL func() string
}

// endpointMsg carries a value from the resolver's subscription.
type endpointMsg types.ResolvedEndpoint

// resultMsg carries the outcome of a completed send.
type resultMsg dispatch.Result

// Model is the root console state for Bubble Tea.
type Model struct {
	resolver  port.EndpointResolver
	sender    port.CommandSender
	endpoints <-chan types.ResolvedEndpoint
	results   <-chan dispatch.Result
	streamURL func() string

	keys   keyMap
	styles Styles
	width  int

	endpoint   types.ResolvedEndpoint
	manual     bool
	manualAddr string

	editing  bool
	input    textinput.Model
	inputErr string

	lastSent   string
	lastResult *dispatch.Result
	showHelp   bool
}

// New creates a console model. The resolver subscription lives as long as opts.Context.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "192.168.1.236"
	input.CharLimit = 15
	input.Prompt = "IP › "

	m := Model{
		resolver:  opts.Resolver,
		sender:    opts.Sender,
		endpoints: opts.Resolver.Subscribe(ctx),
		results:   opts.Results,
		streamURL: opts.StreamURL,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		input:     input,
	}
	m.manual, m.manualAddr = opts.Resolver.Mode()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEndpoint(m.endpoints),
		waitForResult(m.results),
	)
}

func waitForEndpoint(ch <-chan types.ResolvedEndpoint) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return endpointMsg(v)
	}
}

func waitForResult(ch <-chan dispatch.Result) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return resultMsg(v)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case endpointMsg:
		m.endpoint = types.ResolvedEndpoint(msg)
		m.manual, m.manualAddr = m.resolver.Mode()
		return m, waitForEndpoint(m.endpoints)

	case resultMsg:
		result := dispatch.Result(msg)
		m.lastResult = &result
		return m, waitForResult(m.results)

	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Forward):
		m.send(types.MovementCommand(types.DirectionForward))
	case key.Matches(msg, m.keys.Backward):
		m.send(types.MovementCommand(types.DirectionBackward))
	case key.Matches(msg, m.keys.Left):
		m.send(types.MovementCommand(types.DirectionLeft))
	case key.Matches(msg, m.keys.Right):
		m.send(types.MovementCommand(types.DirectionRight))
	case key.Matches(msg, m.keys.Stop):
		m.send(types.ControlCommand(types.DirectionStop))
	case key.Matches(msg, m.keys.StopFeature):
		m.send(types.MovementCommand(types.StopFeature))
	case key.Matches(msg, m.keys.Maya):
		m.send(types.FeatureCommand(types.FeatureMaya))
	case key.Matches(msg, m.keys.ObjectDetection):
		m.send(types.FeatureCommand(types.FeatureObjectDetection))
	case key.Matches(msg, m.keys.LineFollowing):
		m.send(types.FeatureCommand(types.FeatureLineFollowing))
	case key.Matches(msg, m.keys.Attendance):
		m.send(types.FeatureCommand(types.FeatureAttendance))
	case key.Matches(msg, m.keys.ToggleMode):
		if m.manual {
			m.resolver.SetMode(false, "")
		} else if m.manualAddr == "" {
			return m.startEditing()
		} else {
			m.resolver.SetMode(true, m.manualAddr)
		}
	case key.Matches(msg, m.keys.EditManual):
		return m.startEditing()
	}
	return m, nil
}

func (m Model) startEditing() (tea.Model, tea.Cmd) {
	m.editing = true
	m.inputErr = ""
	m.input.SetValue(m.manualAddr)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		if value != "" {
			if _, err := types.ParseNetworkAddress(value); err != nil {
				m.inputErr = "not a valid IPv4 address"
				return m, nil
			}
		}
		// An empty entry still switches to manual mode; resolution stays automatic
		m.resolver.SetMode(true, value)
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) send(cmd types.Command) {
	m.sender.Send(cmd)
	m.lastSent = cmd.String()
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	mode := "AUTO"
	if m.manual {
		mode = "MANUAL"
	}
	b.WriteString(s.Title.Render("Pragyan remote") + "  " + s.Badge.Render(mode) + "\n\n")

	address := m.endpoint.Host()
	if address == "" {
		address = "resolving…"
	}
	rows := []string{
		s.Label.Render("Robot") + s.Value.Render(address),
		s.Label.Render("Endpoint") + s.Value.Render(m.endpoint.BaseURL),
	}
	if m.streamURL != nil {
		rows = append(rows, s.Label.Render("Video")+s.Value.Render(m.streamURL()))
	}
	rows = append(rows, s.Label.Render("Last")+m.renderLast())
	b.WriteString(s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n")

	if m.editing {
		b.WriteString("\n" + m.input.View() + "\n")
		if m.inputErr != "" {
			b.WriteString(s.Danger.Render(m.inputErr) + "\n")
		}
		b.WriteString(s.Muted.Render("enter apply • esc cancel") + "\n")
		return b.String()
	}

	if m.showHelp {
		b.WriteString("\n" + m.renderHelp())
	} else {
		b.WriteString("\n" + s.Muted.Render("↑↓←→ drive • space stop • 1-4 features • m manual IP • t toggle • ? help • q quit") + "\n")
	}
	return b.String()
}

func (m Model) renderLast() string {
	s := m.styles
	if m.lastResult == nil {
		if m.lastSent == "" {
			return s.Muted.Render("nothing sent")
		}
		return s.Muted.Render(m.lastSent + " (sending)")
	}
	r := m.lastResult
	if r.Failed() {
		return s.Danger.Render(fmt.Sprintf("%s failed: %v", r.Command, r.Err))
	}
	return s.Success.Render(fmt.Sprintf("%s ok (%s)", r.Command, r.Duration.Round(time.Millisecond)))
}

func (m Model) renderHelp() string {
	s := m.styles
	var b strings.Builder
	for _, row := range m.keys.helpRows() {
		parts := make([]string, 0, len(row))
		for _, binding := range row {
			h := binding.Help()
			parts = append(parts, s.Key.Render(h.Key)+" "+h.Desc)
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}
	return b.String()
}

// Run starts the console and blocks until the user quits.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
