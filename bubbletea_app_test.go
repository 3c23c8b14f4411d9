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
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, keys ...int) (Model, *[]string) {
	t.Helper()
	s := newTestSession(keys...)
	rc := NewRenderCache()
	m := InitialModel(s, rc, newTestConfig())

	// Plain markdown keeps assertions independent of the terminal.
	m.glamourRenderer = nil
	rc.Flush()

	copied := &[]string{}
	m.copy = func(text string) error {
		*copied = append(*copied, text)
		return nil
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), copied
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeLine(m Model, line string) Model {
	m.commandInput.SetValue(line)
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_InitialState(t *testing.T) {
	m, _ := newTestModel(t, 20, 10, 30)

	assert.True(t, m.ready)
	assert.Equal(t, focusInput, m.focusIndex)
	assert.Equal(t, []int{10, 20, 30}, m.keys)
	assert.Len(t, m.keyList.Items(), 3)
	assert.Contains(t, m.View(), "Keys (3)")
	assert.Equal(t, m.session.Commands(), m.commandInput.AvailableSuggestions())
}

func TestModel_ExecuteFromInput(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeLine(m, "insert 30 20 10")
	assert.False(t, m.statusErr)
	assert.Equal(t, "inserted: 30 20 10", m.status)
	assert.Equal(t, []int{10, 20, 30}, m.keys)
	assert.Equal(t, "", m.commandInput.Value())
	assert.Equal(t, 1, m.session.Revision())

	m = typeLine(m, "frobnicate")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "frobnicate")
	assert.Equal(t, []int{10, 20, 30}, m.keys)
}

func TestModel_CompletesCommandName(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ins")},
		tea.KeyMsg{Type: tea.KeyCtrlL},
	)
	assert.Equal(t, "insert", m.commandInput.Value())
}

func TestModel_MultiLineOutputFitsStatus(t *testing.T) {
	m, _ := newTestModel(t, 1)

	m = typeLine(m, "insert 1 2")
	assert.Equal(t, "inserted: 2 | already present: 1", m.status)
}

func TestModel_TabSwitchesFocus(t *testing.T) {
	m, _ := newTestModel(t, 1)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusKeys, m.focusIndex)
	assert.False(t, m.commandInput.Focused())

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusInput, m.focusIndex)
	assert.True(t, m.commandInput.Focused())
}

func TestModel_KeyListPrefillsDelete(t *testing.T) {
	m, _ := newTestModel(t, 10, 20, 30)

	m = send(m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	key, ok := m.selectedKey()
	require.True(t, ok)
	assert.Equal(t, 20, key)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	assert.Equal(t, focusInput, m.focusIndex)
	assert.Equal(t, "delete 20", m.commandInput.Value())

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{10, 30}, m.keys)
}

func TestModel_DetailShowsSearchPath(t *testing.T) {
	m, _ := newTestModel(t, 20, 10, 30)

	content := m.detailContent()
	assert.Contains(t, content, "# Tree (3 keys, height 2)")
	assert.Contains(t, content, "## Key 10")
	assert.Contains(t, content, "20 → 10")
	assert.Contains(t, content, "**Depth:** 1")

	// The page is cached under the current revision.
	assert.Equal(t, content, GetRender(m.renderCache, renderKey(10, m.session.Revision())))
}

func TestModel_Clipboard(t *testing.T) {
	m, copied := newTestModel(t, 2, 1, 3)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Len(t, *copied, 1)
	assert.Equal(t, "[1 2 3]", (*copied)[0])
	assert.Contains(t, m.status, "in-order keys")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Len(t, *copied, 2)
	assert.Equal(t, m.session.Tree().String(), (*copied)[1])

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no clipboard")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_SmallTerminal(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 20, Height: 8})
	assert.Contains(t, m.View(), "Terminal too small")
}
