package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paraphrase/internal/domain"
)

// ParaphrasePort is the TUI-facing subset of the paraphrase service.
type ParaphrasePort interface {
	Process(text string) ([]domain.Report, error)
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  ParaphrasePort
	input    textinput.Model
	viewport viewport.Model
	reports  []domain.Report
	intro    string
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model instance. intro is shown under the header.
func New(service ParaphrasePort, intro string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a passage and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, intro: intro, status: "Ready. Type a passage to paraphrase."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around report and input boxes
		_, rh := reportBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + intro
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + ih + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentReport())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				reports, err := m.service.Process(text)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.reports = nil
				} else {
					m.status = fmt.Sprintf("%d sentence(s) paraphrased", len(reports))
					m.reports = reports
					m.cursor = 0
					m.input.SetValue("")
				}
				m.viewport.SetContent(m.renderCurrentReport())
				return m, nil
			}
		case "down":
			if len(m.reports) > 0 {
				m.cursor = (m.cursor + 1) % len(m.reports)
				m.viewport.SetContent(m.renderCurrentReport())
				return m, nil
			}
		case "up":
			if len(m.reports) > 0 {
				m.cursor = (m.cursor - 1 + len(m.reports)) % len(m.reports)
				m.viewport.SetContent(m.renderCurrentReport())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current report.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Paraphrase")
	intro := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.intro)
	input := inputBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	body := reportBoxStyle.Render(m.viewport.View())
	return header + "\n" + intro + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderCurrentReport() string {
	if len(m.reports) == 0 {
		return "No sentences yet."
	}
	r := m.reports[m.cursor]
	var b strings.Builder
	fmt.Fprintf(&b, "Sentence %d/%d  replacements=%d\n\n", m.cursor+1, len(m.reports), len(r.Replacements))
	b.WriteString(labelStyle.Render("Original: ") + r.Original + "\n")
	b.WriteString(labelStyle.Render("Replaced: ") + highlightSynonyms(r.Replaced, r.Replacements) + "\n")
	if r.Concept != nil {
		b.WriteString(labelStyle.Render("Concept:  ") + r.Concept.Label() + "\n")
	}
	for _, s := range r.Senses {
		fmt.Fprintf(&b, "  %s -> %s: %s\n", s.Word, s.Synset.Name, s.Synset.Definition)
	}
	return b.String()
}

var (
	reportBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// highlightSynonyms styles the first occurrence of each substituted synonym,
// scanning left to right so earlier highlights are not re-matched.
func highlightSynonyms(text string, reps []domain.Replacement) string {
	if len(reps) == 0 {
		return text
	}
	var b strings.Builder
	rest := text
	for _, r := range reps {
		i := strings.Index(rest, r.Synonym)
		if i < 0 {
			continue
		}
		b.WriteString(rest[:i])
		b.WriteString(highlightStyle.Render(r.Synonym))
		rest = rest[i+len(r.Synonym):]
	}
	b.WriteString(rest)
	return b.String()
}
