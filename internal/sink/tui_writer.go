package sink

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"buildmon/internal/config"
	"buildmon/internal/telemetry"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// snapMsg carries a snapshot log line plus the snapshot itself.
type snapMsg struct {
	line string
	snap telemetry.Snapshot
}

// alertMsg carries an alert log line.
type alertMsg struct{ line string }

// statsMsg carries a stats update for the footer.
type statsMsg struct{ telemetry.Stats }

const maxSectionHeightPct = 0.2

// TUIWriter renders snapshots, alerts, and stats in a bubbletea TUI.
type TUIWriter struct {
	program    teaProgram
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewTUIWriter starts a bubbletea program and returns a TUIWriter.
func NewTUIWriter(cfg *config.MonitorConfig) *TUIWriter {
	w := &TUIWriter{done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newTUIModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	go func() {
		_ = p.Start()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

// WriteSnapshot implements SnapshotWriter.
func (w *TUIWriter) WriteSnapshot(s telemetry.Snapshot) error {
	r := s.Reading
	ind := indicatorANSI(r.IndicatorColor)
	line := fmt.Sprintf("%s[%s]%s %sbuilding=%s%s %s●%s %stemp=%.1f(%s)%s %shum=%.1f(%s)%s %slight=%.2f(%s)%s %socc=%d%s %senergy=%.1fkW%s",
		colorGray, s.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, s.BuildingID, colorReset,
		ind, colorReset,
		colorGreen, r.Temperature, r.TemperatureStatus, colorReset,
		colorYellow, r.Humidity, r.HumidityStatus, colorReset,
		colorMagenta, r.LightLevel, r.LightCategory, colorReset,
		colorCyan, s.Occupancy, colorReset,
		colorYellow, s.Equipment.EnergyConsumption, colorReset,
	)
	if s.Equipment.Heating {
		line += fmt.Sprintf(" %sheating%s", colorRed, colorReset)
	}
	if s.Equipment.Cooling {
		line += fmt.Sprintf(" %scooling%s", colorBlue, colorReset)
	}
	if s.Equipment.Ventilating {
		line += fmt.Sprintf(" %sventilating%s", colorCyan, colorReset)
	}
	for _, f := range s.Findings {
		level := colorYellow
		if f.Level == telemetry.ComplianceViolation {
			level = colorRed
		}
		line += fmt.Sprintf(" %s%s:%s%s", level, f.Level, f.Regulation, colorReset)
	}
	w.program.Send(snapMsg{line: line, snap: s})
	return nil
}

// WriteAlerts implements the alert sink.
func (w *TUIWriter) WriteAlerts(alerts []telemetry.Alert) error {
	for _, a := range alerts {
		line := fmt.Sprintf("%s[%s]%s %sALERT%s %sseverity=%s%s msg=%q",
			colorGray, a.TriggeredAt.Format(time.RFC3339), colorReset,
			colorRed, colorReset,
			severityANSI(a.Severity), a.Severity, colorReset,
			a.Message)
		w.program.Send(alertMsg{line: line})
	}
	return nil
}

// WriteStats implements the stats sink.
func (w *TUIWriter) WriteStats(s telemetry.Stats) error {
	w.program.Send(statsMsg{Stats: s})
	return nil
}

// Close shuts down the TUI program and waits for cleanup.
func (w *TUIWriter) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

type tuiModel struct {
	cfg          *config.MonitorConfig
	table        table.Model
	vp           viewport.Model
	alertVP      viewport.Model
	logs         []string
	alertLogs    []string
	stats        telemetry.Stats
	last         telemetry.Snapshot
	haveSnap     bool
	wrap         bool
	autoscroll   bool
	help         bool
	header       string
	headerHeight int
	height       int
}

func newTUIModel(cfg *config.MonitorConfig) tuiModel {
	cols := []table.Column{
		{Title: "Config", Width: 24},
		{Title: "Value", Width: 14},
		{Title: "Config", Width: 24},
		{Title: "Value", Width: 14},
	}
	rows := []table.Row{
		{"Building", cfg.Building.ID, "Name", cfg.Building.Name},
		{"Target Temperature", fmt.Sprintf("%.1f°C", cfg.Equipment.TargetTemperature), "Base Load (kW)", fmt.Sprintf("%.1f", cfg.Equipment.BaseLoadKW)},
		{"Alert Registry", fmt.Sprintf("%d", cfg.Alerts.RegistryCapacity), "Max Occupants", fmt.Sprintf("%d", cfg.Occupancy.MaxOccupants)},
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(len(rows)+1))
	return tuiModel{
		cfg:        cfg,
		table:      t,
		vp:         viewport.New(0, 0),
		alertVP:    viewport.New(0, 0),
		autoscroll: true,
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.vp.Width = msg.Width
		m.alertVP.Width = msg.Width
		m.height = msg.Height
		m.header = m.table.View()
		m.headerHeight = lipgloss.Height(m.header)
		m.updateViewportHeight()
		m.refreshViewport()
		m.refreshAlerts()
	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "?", "h", "esc":
				m.help = false
				m.updateViewportHeight()
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "w":
			m.wrap = !m.wrap
			m.refreshViewport()
			return m, nil
		case "s":
			m.autoscroll = !m.autoscroll
			if m.autoscroll {
				m.vp.GotoBottom()
				m.alertVP.GotoBottom()
			}
			return m, nil
		case "h", "?":
			m.help = !m.help
			m.updateViewportHeight()
			return m, nil
		}
		if !m.autoscroll {
			switch msg.String() {
			case "j", "down":
				m.vp.LineDown(1)
				m.alertVP.LineDown(1)
			case "k", "up":
				m.vp.LineUp(1)
				m.alertVP.LineUp(1)
			case "pgdown", "ctrl+n":
				m.vp.LineDown(10)
				m.alertVP.LineDown(10)
			case "pgup", "ctrl+p":
				m.vp.LineUp(10)
				m.alertVP.LineUp(10)
			default:
				var cmd tea.Cmd
				m.vp, cmd = m.vp.Update(msg)
				m.alertVP, _ = m.alertVP.Update(msg)
				return m, cmd
			}
			return m, nil
		}
		return m, nil
	case snapMsg:
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > 1000 {
			m.logs = m.logs[len(m.logs)-1000:]
		}
		m.last = msg.snap
		m.haveSnap = true
		m.refreshViewport()
	case alertMsg:
		m.alertLogs = append(m.alertLogs, msg.line)
		if len(m.alertLogs) > 1000 {
			m.alertLogs = m.alertLogs[len(m.alertLogs)-1000:]
		}
		m.updateViewportHeight()
		m.refreshAlerts()
		m.refreshViewport()
	case statsMsg:
		m.stats = msg.Stats
	}
	return m, nil
}

func (m *tuiModel) maxSectionLines() int {
	h := int(float64(m.height) * maxSectionHeightPct)
	if h < 1 {
		h = 1
	}
	return h
}

func (m *tuiModel) updateViewportHeight() {
	bottomHeight := lipgloss.Height(m.renderBottom())

	alertLines := len(m.alertLogs)
	if alertLines == 0 {
		alertLines = 1
	}
	if max := m.maxSectionLines(); alertLines > max {
		alertLines = max
	}
	m.alertVP.Height = alertLines

	h := m.height - m.headerHeight - bottomHeight - (1 + m.alertVP.Height) - 4
	if h < 0 {
		h = 0
	}
	m.vp.Height = h
	if m.autoscroll {
		m.vp.GotoBottom()
		m.alertVP.GotoBottom()
	}
}

func (m *tuiModel) refreshViewport() {
	var lines []string
	for _, l := range m.logs {
		if m.wrap {
			lines = append(lines, wordwrap.String(l, m.vp.Width))
		} else {
			lines = append(lines, l)
		}
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m *tuiModel) refreshAlerts() {
	content := "none"
	if len(m.alertLogs) > 0 {
		content = strings.Join(m.alertLogs, "\n")
	}
	m.alertVP.SetContent(content)
	if m.autoscroll {
		m.alertVP.GotoBottom()
	}
}

func (m tuiModel) View() string {
	if m.help {
		return m.renderHelp()
	}
	divider := strings.Repeat("─", m.vp.Width)
	sections := []string{
		m.header,
		divider,
		m.vp.View(),
		divider,
		"Alerts:",
		m.alertVP.View(),
		divider,
		m.renderBottom(),
	}
	return strings.Join(sections, "\n")
}

func (m tuiModel) renderBottom() string {
	wrapColor := lipgloss.Color("9")
	if m.wrap {
		wrapColor = lipgloss.Color("10")
	}
	scrollColor := lipgloss.Color("10")
	if !m.autoscroll {
		scrollColor = lipgloss.Color("9")
	}
	wrapIndicator := lipgloss.NewStyle().Foreground(wrapColor).Render("●")
	scrollIndicator := lipgloss.NewStyle().Foreground(scrollColor).Render("●")
	stats := fmt.Sprintf("%sSTATS%s %sreadings=%d%s %salerts=%d%s %suptime=%.1fm%s %savg_interval=%.0fms%s",
		colorBlue, colorReset,
		colorGreen, m.stats.TotalReadings, colorReset,
		colorRed, m.stats.TotalAlerts, colorReset,
		colorCyan, m.stats.UptimeMinutes, colorReset,
		colorYellow, m.stats.AverageIntervalMs, colorReset)
	line := fmt.Sprintf("%s | Wrap %s | Scroll %s | h for help", stats, wrapIndicator, scrollIndicator)
	if m.haveSnap {
		indicator := fmt.Sprintf("%s●%s", indicatorANSI(m.last.Reading.IndicatorColor), colorReset)
		line = fmt.Sprintf("%s %s", indicator, line)
	}
	return line
}

func (m tuiModel) renderHelp() string {
	lines := []string{
		"Key Bindings:",
		" q  quit",
		" w  toggle wrap for snapshot log",
		" s  toggle auto-scroll",
		" h/? toggle this help view",
		"",
		"When auto-scroll is disabled:",
		" j/k or up/down    scroll one line",
		" pgdown/pgup       scroll a page",
	}
	return strings.Join(lines, "\n")
}
