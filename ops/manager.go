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

package ops

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cybrota/avltree/avl"
)

// Result is the outcome of one executed line.
type Result struct {
	Command *Command
	Output  string
	Mutated bool // the tree's contents changed
}

type Manager struct {
	handlers []Handler
	config   Config
}

// Config tunes the built-in handlers.
type Config struct {
	ShowHeights bool
}

func NewManager(config Config) *Manager {
	manager := &Manager{config: config}

	manager.Register(&insertHandler{})
	manager.Register(&deleteHandler{})
	manager.Register(&searchHandler{})
	manager.Register(&inOrderHandler{})
	manager.Register(&printHandler{showHeights: config.ShowHeights})
	manager.Register(&checkHandler{})
	manager.Register(&statsHandler{})
	manager.Register(&pathHandler{})
	manager.Register(&boundHandler{})
	manager.Register(&boundHandler{max: true})
	manager.Register(&clearHandler{})
	manager.Register(&helpHandler{manager: manager})

	return manager
}

func (m *Manager) Register(h Handler) {
	m.handlers = append(m.handlers, h)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority() < m.handlers[j].Priority()
	})
}

// Execute parses line and runs it against t. A blank or comment line
// returns a zero Result.
func (m *Manager) Execute(t *avl.Tree, line string) (Result, error) {
	cmd, err := ParseLine(line)
	if err != nil || cmd == nil {
		return Result{}, err
	}
	return m.Run(t, cmd)
}

func (m *Manager) Run(t *avl.Tree, cmd *Command) (Result, error) {
	h := m.lookup(cmd.Name)
	if h == nil {
		return Result{Command: cmd}, fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Name)
	}

	before := t.Len()
	out, err := h.Run(t, cmd)
	res := Result{
		Command: cmd,
		Output:  out,
		Mutated: h.Mutates() && t.Len() != before,
	}
	return res, err
}

func (m *Manager) lookup(name string) Handler {
	for _, h := range m.handlers {
		if h.SupportsCommand(name) {
			return h
		}
	}
	return nil
}

// Names returns the primary name of every handler in priority order.
func (m *Manager) Names() []string {
	out := make([]string, 0, len(m.handlers))
	for _, h := range m.handlers {
		out = append(out, h.Names()[0])
	}
	return out
}

// Usage lists one usage line per registered handler.
func (m *Manager) Usage() string {
	lines := make([]string, 0, len(m.handlers))
	for _, h := range m.handlers {
		lines = append(lines, h.Usage())
	}
	return strings.Join(lines, "\n")
}
