// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

const (
	focusInput = iota
	focusKeys
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	commandInput textinput.Model
	keyList      list.Model
	treeViewport viewport.Model

	session     *Session
	renderCache *cache.Cache
	config      *Config

	focusIndex int
	keys       []int
	status     string
	statusErr  bool

	// clipboard writer, swapped out in tests
	copy func(string) error

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accentColor()).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// keyItem is one row of the key list
type keyItem struct {
	key int
}

func (i keyItem) FilterValue() string { return strconv.Itoa(i.key) }
func (i keyItem) Title() string       { return strconv.Itoa(i.key) }
func (i keyItem) Description() string { return "" }

// InitialModel creates the initial model
func InitialModel(session *Session, rc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30, delete 20, search 10 ..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	// tab switches panels, so completion moves to ctrl+l
	ti.ShowSuggestions = true
	ti.SetSuggestions(session.Commands())
	ti.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+l"))

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	keyList := list.New([]list.Item{}, delegate, 0, 0)
	keyList.SetShowTitle(false)
	keyList.SetShowHelp(false)
	keyList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(config.UI.WordWrap),
	)

	m := Model{
		commandInput:    ti,
		keyList:         keyList,
		treeViewport:    treeViewport,
		session:         session,
		renderCache:     rc,
		config:          config,
		focusIndex:      focusInput,
		copy:            clipboard.WriteAll,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		status:          "type help for the list of operations",
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focusIndex == focusInput {
				m.focusIndex = focusKeys
				m.commandInput.Blur()
			} else {
				m.focusIndex = focusInput
				m.commandInput.Focus()
			}
			return m, nil
		case "ctrl+y":
			m.copyText(fmt.Sprint(m.session.Tree().InOrder()), "in-order keys")
			return m, nil
		case "ctrl+p":
			m.copyText(m.session.Tree().String(), "tree diagram")
			return m, nil
		}

		if m.focusIndex == focusInput {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.updateDetail()
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.execute(m.commandInput.Value())
		m.commandInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.keyList.CursorUp()
		m.updateDetail()
		return m, nil
	case "down", "j":
		m.keyList.CursorDown()
		m.updateDetail()
		return m, nil
	case "enter", "d":
		// Prefill a delete for the selected key
		if key, ok := m.selectedKey(); ok {
			m.commandInput.SetValue(fmt.Sprintf("delete %d", key))
			m.commandInput.CursorEnd()
			m.focusIndex = focusInput
			m.commandInput.Focus()
		}
		return m, nil
	case "pgup":
		m.treeViewport.LineUp(m.treeViewport.Height)
		return m, nil
	case "pgdown":
		m.treeViewport.LineDown(m.treeViewport.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.keyList, cmd = m.keyList.Update(msg)
	return m, cmd
}

// execute runs one command line against the session and refreshes the
// views.
func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	res, err := m.session.Execute(line)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
	} else {
		m.status = strings.ReplaceAll(res.Output, "\n", " | ")
		m.statusErr = false
	}
	if res.Mutated {
		m.refresh()
	} else {
		m.updateDetail()
	}
}

func (m *Model) copyText(text string, what string) {
	if err := m.copy(text); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("📋 copied %s to clipboard", what)
	m.statusErr = false
}

// refresh reloads the key list from the tree.
func (m *Model) refresh() {
	m.keys = m.session.Tree().InOrder()
	items := make([]list.Item, len(m.keys))
	for i, k := range m.keys {
		items[i] = keyItem{key: k}
	}
	m.keyList.SetItems(items)
	if idx := m.keyList.Index(); idx >= len(m.keys) && len(m.keys) > 0 {
		m.keyList.Select(len(m.keys) - 1)
	}
	m.updateDetail()
}

func (m *Model) selectedKey() (int, bool) {
	if len(m.keys) == 0 {
		return 0, false
	}
	item, ok := m.keyList.SelectedItem().(keyItem)
	if !ok {
		return 0, false
	}
	return item.key, true
}

// updateDetail fills the right panel with the diagram and, when a key is
// selected, its search path.
func (m *Model) updateDetail() {
	m.treeViewport.SetContent(m.detailContent())
}

func (m *Model) detailContent() string {
	rev := m.session.Revision()
	cacheKey := treeRenderKey(rev)
	key, hasKey := m.selectedKey()
	if hasKey {
		cacheKey = renderKey(key, rev)
	}
	if page := GetRender(m.renderCache, cacheKey); page != "" {
		return page
	}

	tree := m.session.Tree()
	var diagram strings.Builder
	_ = tree.Fprint(&diagram, m.config.Tree.ShowHeights)

	var content strings.Builder
	content.WriteString(fmt.Sprintf("# Tree (%d keys, height %d)\n\n", tree.Len(), tree.Height()))
	content.WriteString("```\n" + diagram.String() + "```\n\n")

	if hasKey {
		path, _ := tree.Path(key)
		steps := make([]string, len(path))
		for i, k := range path {
			steps[i] = strconv.Itoa(k)
		}
		content.WriteString(fmt.Sprintf("## Key %d\n\n", key))
		content.WriteString(fmt.Sprintf("**Search path:** %s\n\n", strings.Join(steps, " → ")))
		content.WriteString(fmt.Sprintf("**Depth:** %d\n\n", len(path)-1))
	}

	page := content.String()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(page); err == nil {
			page = rendered
		}
	}
	CacheRender(m.renderCache, cacheKey, page)
	return page
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 3 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 4
	m.keyList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = inputHeight + listHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 3 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, inputTitle := m.styles.BorderBlurred, " ⌨ Command "
	listStyle, listTitle := m.styles.BorderBlurred, fmt.Sprintf(" 🔢 Keys (%d) ", len(m.keys))
	if m.focusIndex == focusInput {
		inputStyle, inputTitle = m.styles.BorderFocused, " ⌨ Command (Active) "
	} else {
		listStyle, listTitle = m.styles.BorderFocused, fmt.Sprintf(" 🔢 Keys (%d) (Active) ", len(m.keys))
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.commandInput.View(),
		))

	listBox := listStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.keyList.View(),
		))

	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(" 🌳 Tree "),
			m.treeViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "ctrl+l", "d", "ctrl+y", "ctrl+p", "esc"}
	descs := []string{"run / delete selected", "switch focus", "complete", "delete selected", "copy keys", "copy diagram", "quit"}

	var helpEntries []string
	for i, k := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(k),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, rc *cache.Cache, config *Config) error {
	model := InitialModel(session, rc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
