package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/facet/internal/colormath"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/registry"
	"github.com/lunit-heesungyang/facet/internal/storage"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/theme"
	"github.com/lunit-heesungyang/facet/internal/ui"
)

// FilterMode represents the current filter setting
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterSettings
	FilterFaces
	FilterMappings
)

const filterModes = 4

func (f FilterMode) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterSettings:
		return "Settings"
	case FilterFaces:
		return "Faces"
	case FilterMappings:
		return "Mappings"
	}
	return ""
}

// ParseFilter maps a config value to a filter. Unknown values show
// everything.
func ParseFilter(s string) FilterMode {
	switch strings.ToLower(s) {
	case "settings":
		return FilterSettings
	case "faces":
		return FilterFaces
	case "mappings":
		return FilterMappings
	}
	return FilterAll
}

// AppState represents the current UI state
type AppState int

const (
	StateNormal AppState = iota
	StateInput
)

type itemKind int

const (
	kindSetting itemKind = iota
	kindFace
	kindMapping
)

type item struct {
	name string
	kind itemKind
}

// Options tune the preview.
type Options struct {
	Filter    FilterMode
	GammaStep float64
}

// Model is the main Bubble Tea model
type Model struct {
	// Core dependencies
	theme   *theme.Theme
	storage *storage.Storage
	keys    KeyMap
	styles  Styles

	gammaStep float64

	// Window dimensions
	width  int
	height int

	// List state
	presets    *model.PresetIndex
	items      []item
	selected   int
	filterMode FilterMode

	// UI state
	state     AppState
	statusMsg string
	failed    bool

	// Sub-components
	textInput textinput.Model
	viewport  viewport.Model
}

// New creates a new TUI model previewing th. Presets are read from s.
func New(th *theme.Theme, s *storage.Storage, opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Placeholder = "preset name"

	step := opts.GammaStep
	if step <= 0 {
		step = 0.1
	}

	m := Model{
		theme:      th,
		storage:    s,
		keys:       DefaultKeyMap(),
		styles:     ThemedStyles(th.Store()),
		gammaStep:  step,
		filterMode: opts.Filter,
		textInput:  ti,
		viewport:   viewport.New(40, 20),
	}
	m.rebuildItems()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadPresets()
}

// Presets loaded from storage
type presetsLoadedMsg struct {
	index *model.PresetIndex
	err   error
}

func (m Model) loadPresets() tea.Cmd {
	return func() tea.Msg {
		idx, err := m.storage.LoadIndex()
		return presetsLoadedMsg{index: idx, err: err}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(1, m.width-m.width/2-4)
		m.viewport.Height = max(1, m.height-3)
		m.refreshPreview()
		return m, nil

	case presetsLoadedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Loading presets: %v", msg.err))
			return m, nil
		}
		m.presets = msg.index
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateInput:
		return m.handleInputKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.NextPreset):
		return m.cyclePreset(1)

	case key.Matches(msg, m.keys.PrevPreset):
		return m.cyclePreset(-1)

	case key.Matches(msg, m.keys.GammaUp):
		return m.adjustGamma(m.gammaStep)

	case key.Matches(msg, m.keys.GammaDown):
		return m.adjustGamma(-m.gammaStep)

	case key.Matches(msg, m.keys.Filter):
		m.filterMode = (m.filterMode + 1) % filterModes
		m.rebuildItems()
		m.setStatus(fmt.Sprintf("Filter: %s", m.filterMode))
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if err := m.theme.Reload(); err != nil {
			m.setError(fmt.Sprintf("Reload: %v", err))
			return m, nil
		}
		m.themeChanged("Reloaded")
		return m, m.loadPresets()

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Save):
		m.state = StateInput
		m.textInput.Reset()
		if name := m.theme.PresetName(); name != "" {
			m.textInput.SetValue(name)
		}
		return m, m.textInput.Focus()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		name := strings.TrimSpace(m.textInput.Value())
		m.textInput.Reset()
		m.textInput.Blur()
		m.state = StateNormal
		if name == "" {
			m.setStatus("Cancelled")
			return m, nil
		}
		return m.savePreset(name)

	case key.Matches(msg, m.keys.Escape):
		m.textInput.Reset()
		m.textInput.Blur()
		m.state = StateNormal
		m.setStatus("Cancelled")
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) cyclePreset(step int) (Model, tea.Cmd) {
	if m.presets == nil || len(m.presets.Presets) == 0 {
		m.setError("No presets loaded")
		return m, nil
	}
	next := m.presets.Next(m.theme.PresetName(), step)
	if err := m.theme.ApplyPreset(next); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.themeChanged(fmt.Sprintf("Preset: %s", next.Name))
	return m, nil
}

func (m Model) adjustGamma(delta float64) (Model, tea.Cmd) {
	p := m.theme.Palette()
	gamma := math.Round((p.Gamma+delta)*100) / 100
	if gamma <= 0 {
		m.setError(fmt.Sprintf("gamma must stay positive (now %.2f)", p.Gamma))
		return m, nil
	}
	p.Gamma = gamma
	if err := m.theme.SetPalette(p); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.themeChanged(fmt.Sprintf("Gamma: %.2f", gamma))
	return m, nil
}

func (m Model) savePreset(name string) (Model, tea.Cmd) {
	preset := &model.Preset{
		Name:        name,
		Description: "Saved from the preview",
		Palette:     m.theme.Palette(),
	}
	if err := m.storage.SavePreset(preset); err != nil {
		m.setError(fmt.Sprintf("Save: %v", err))
		return m, nil
	}
	m.setStatus(fmt.Sprintf("%s Saved %s", ui.IconSuccess, name))
	return m, m.loadPresets()
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func (m Model) copySelected() (Model, tea.Cmd) {
	it, ok := m.selectedItem()
	if !ok {
		m.setError("Nothing selected")
		return m, nil
	}
	c := m.itemColor(it)
	if c == "" {
		m.setError(fmt.Sprintf("%s has no color", it.name))
		return m, nil
	}
	if err := copyToClipboard(c); err != nil {
		m.setError(fmt.Sprintf("Copy: %v", err))
		return m, nil
	}
	m.setStatus(fmt.Sprintf("%s Copied %s", ui.IconSuccess, c))
	return m, nil
}

func (m *Model) themeChanged(status string) {
	m.styles = ThemedStyles(m.theme.Store())
	m.rebuildItems()
	m.setStatus(status)
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.failed = false
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.failed = true
}

// rebuildItems lists the values matching the filter, keeping the
// selection on the same name when it is still shown.
func (m *Model) rebuildItems() {
	current := ""
	if it, ok := m.selectedItem(); ok {
		current = it.name
	}

	var items []item
	res := m.theme.Resolved()
	if res != nil {
		if m.filterMode == FilterAll || m.filterMode == FilterSettings {
			for _, name := range res.Names(registry.Setting) {
				items = append(items, item{name: name, kind: kindSetting})
			}
		}
		if m.filterMode == FilterAll || m.filterMode == FilterFaces {
			for _, name := range res.Names(registry.StyleSpec) {
				items = append(items, item{name: name, kind: kindFace})
			}
		}
	}
	if m.filterMode == FilterAll || m.filterMode == FilterMappings {
		for _, mapping := range theme.Mappings {
			items = append(items, item{name: mapping.Name, kind: kindMapping})
		}
	}

	m.items = items
	m.selected = 0
	for i, it := range items {
		if it.name == current {
			m.selected = i
			break
		}
	}
	m.refreshPreview()
}

func (m Model) selectedItem() (item, bool) {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected], true
	}
	return item{}, false
}

func (m *Model) refreshPreview() {
	m.viewport.SetContent(m.previewContent(m.viewport.Width))
	m.viewport.GotoTop()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Reserve 3 lines for header(1) + footer(1) + status(1)
	listWidth := m.width / 2
	previewWidth := m.width - listWidth
	contentHeight := max(1, m.height-3)

	header := m.styles.Header.Render(m.headerText())

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	previewPanel := m.styles.PreviewPanel.
		Width(previewWidth).
		Render(m.viewport.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	keys := "[j/k] move [n/N] preset [+/-] gamma [f]ilter [r]eload [s]ave [q]uit"
	footer := m.styles.Footer.Render(keys)
	status := m.styles.StatusBar.Render(m.statusMsg)
	if m.failed {
		status = m.styles.ErrorText.Render(ui.IconError + " " + m.statusMsg)
	}

	if m.state == StateInput {
		overlay := m.styles.PopupBorder.Render(
			fmt.Sprintf("%s\n%s\n\n[enter] save  [esc] cancel",
				m.styles.InputPrompt.Render(ui.IconInput+" Save palette as:"),
				m.textInput.View(),
			),
		)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(overlay)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
		status,
	)

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) headerText() string {
	p := m.theme.Palette()
	name := m.theme.PresetName()
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("facet %s %s [%s] gamma %.2f", ui.PresetIcon(p.IsDark()), name, m.filterMode, p.Gamma)
}

func (m Model) renderList(width, height int) string {
	var lines []string

	if len(m.items) == 0 {
		lines = append(lines, fmt.Sprintf("No %s", strings.ToLower(m.filterMode.String())))
	}

	// Scroll so the selection stays visible
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	for i := start; i < len(m.items) && i < start+height; i++ {
		it := m.items[i]
		prefix := fmt.Sprintf("%s %s ", kindIcon(it.kind), m.itemSwatch(it))

		// Truncate using display width
		name := it.name
		room := width - lipgloss.Width(prefix)
		if runewidth.StringWidth(name) > room {
			name = runewidth.Truncate(name, max(0, room-3), "...")
		}

		if i == m.selected {
			lines = append(lines, prefix+m.styles.SelectedItem.Render(name))
			continue
		}
		if it.kind == kindSetting {
			lines = append(lines, m.styles.NormalItem.Render(prefix+name))
			continue
		}
		st, _ := render(m.theme.Store(), it.name)
		lines = append(lines, prefix+st.Render(name))
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func kindIcon(k itemKind) string {
	switch k {
	case kindSetting:
		return ui.IconSetting
	case kindFace:
		return ui.IconFace
	case kindMapping:
		return ui.IconMapping
	}
	return ui.IconUnknown
}

func (m Model) itemSwatch(it item) string {
	return ui.Swatch(m.itemColor(it))
}

// itemColor is a setting's color, or a face's background, falling
// back to its foreground.
func (m Model) itemColor(it item) string {
	if it.kind == kindSetting {
		c, _ := m.theme.Resolved().Color(it.name)
		return c
	}
	f, err := m.theme.Store().Resolve(it.name)
	if err != nil {
		return ""
	}
	if f.Background != "" {
		return f.Background
	}
	return f.Foreground
}

func (m Model) previewContent(width int) string {
	it, ok := m.selectedItem()
	if !ok {
		return "Nothing selected"
	}

	var lines []string
	add := func(label, value string) {
		text := wrapText(fmt.Sprintf("%-10s %s", label, value), width)
		for _, l := range strings.Split(text, "\n") {
			lines = append(lines, m.styles.PreviewLabel.Render(l))
		}
	}

	lines = append(lines, m.styles.PreviewTitle.Render(it.name))
	lines = append(lines, strings.Repeat("─", min(width, 40)))

	switch it.kind {
	case kindSetting:
		add("kind", "setting")
		res := m.theme.Resolved()
		if c, ok := res.Color(it.name); ok {
			add("value", c)
			if l, ch, h, err := colormath.LCH(c); err == nil {
				add("lch", fmt.Sprintf("%.1f %.1f %.0f°", l, ch, h*180/math.Pi))
			}
			if ratio, err := colormath.Contrast(c, m.theme.Palette().DefaultBG); err == nil {
				add("contrast", fmt.Sprintf("%.2f on default-bg", ratio))
			}
			lines = append(lines, "", ui.Label("  sample  ", c))
		} else {
			add("value", fmt.Sprintf("%v", res.Settings[it.name]))
		}
		if def, ok := m.theme.Registry().Lookup(it.name); ok && len(def.Deps) > 0 {
			add("depends", strings.Join(def.Deps, ", "))
		}

	case kindFace, kindMapping:
		store := m.theme.Store()
		if it.kind == kindFace {
			add("kind", "face")
		} else {
			add("kind", "mapping")
		}
		if spec, ok := store.Spec(it.name, style.PriorityDefault); ok {
			add("spec", spec.String())
		}
		if spec, ok := store.Spec(it.name, style.PriorityUser); ok {
			add("user", spec.String())
		}
		f, err := store.Resolve(it.name)
		if err != nil {
			add("error", err.Error())
			break
		}
		add("resolved", f.String())
		if f.Foreground != "" && f.Background != "" {
			if ratio, err := colormath.Contrast(f.Foreground, f.Background); err == nil {
				add("contrast", fmt.Sprintf("%.2f", ratio))
			}
		}
		lines = append(lines, "", style.ToLipgloss(f).Render("The quick brown fox"))
	}

	return strings.Join(lines, "\n")
}

// Helper functions

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		// Wrap using display width
		for runewidth.StringWidth(line) > width {
			wrapped := runewidth.Truncate(line, width, "")
			if wrapped == "" {
				break
			}
			result.WriteString(wrapped)
			result.WriteString("\n")
			line = line[len(wrapped):]
		}
		result.WriteString(line)
	}

	return result.String()
}
