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
	"errors"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	cmd := NewCommand([]string{"INSERT", "1", "2"})

	assert.Equal(t, "insert", cmd.Name)
	assert.Equal(t, []string{"1", "2"}, cmd.Args)
	assert.Equal(t, "INSERT 1 2", cmd.FullName)
	assert.True(t, cmd.HasArgs(2))
	assert.False(t, cmd.HasArgs(3))

	keys, err := cmd.Keys()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, keys)
}

func TestCommandKeysErrors(t *testing.T) {
	_, err := NewCommand([]string{"insert"}).Keys()
	assert.True(t, errors.Is(err, ErrMissingArgument))

	_, err = NewCommand([]string{"insert", "1", "x"}).Keys()
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.Contains(t, err.Error(), `"x"`)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2 3", []string{"insert", "1", "2", "3"}},
		{"  search   -4 ", []string{"search", "-4"}},
		{`delete "7"`, []string{"delete", "7"}},
		{"", nil},
		{"   ", nil},
		{"# a comment", nil},
	}

	for _, tc := range tests {
		cmd, err := ParseLine(tc.input)
		require.NoError(t, err, tc.input)
		if tc.expected == nil {
			assert.Nil(t, cmd, tc.input)
			continue
		}
		require.NotNil(t, cmd, tc.input)
		assert.Equal(t, tc.expected, cmd.Parts, tc.input)
	}

	_, err := ParseLine(`insert "1`)
	assert.Error(t, err)
}

func TestManagerExecute(t *testing.T) {
	tree := avl.New()
	m := NewManager(Config{})

	steps := []struct {
		line    string
		output  string
		mutated bool
	}{
		{"insert 30 20 10", "inserted: 30 20 10", true},
		{"add 20", "inserted: (none)\nalready present: 20", false},
		{"inorder", "[10 20 30]", false},
		{"search 10 15", "10: true\n15: false", false},
		{"path 10", "20 -> 10 (found)", false},
		{"path 25", "20 -> 30 (not found)", false},
		{"path 10 25 20", "20 -> 10 (found)\n20 -> 30 (not found)\n20 (found)", false},
		{"stats", "size=3 height=2 root=20 min=10 max=30", false},
		{"min", "10", false},
		{"max", "30", false},
		{"print", "       /------+ 30\n|------+ 20\n       \\------+ 10", false},
		{"check", "ok (3 keys, height 2)", false},
		{"rm 10 99", "deleted: 10\nnot found: 99", true},
		{"d 99", "deleted: (none)\nnot found: 99", false},
		{"clear", "cleared 2 keys", true},
		{"stats", "size=0 height=0", false},
		{"min", "(empty)", false},
		{"path 1", "(not found)", false},
	}

	for _, s := range steps {
		res, err := m.Execute(tree, s.line)
		require.NoError(t, err, s.line)
		assert.Equal(t, s.output, res.Output, s.line)
		assert.Equal(t, s.mutated, res.Mutated, s.line)
	}
}

func TestManagerPrintWithHeights(t *testing.T) {
	tree := avl.New()
	tree.Insert(1)
	m := NewManager(Config{ShowHeights: true})

	res, err := m.Execute(tree, "tree")
	require.NoError(t, err)
	assert.Equal(t, "|------+ 1 h=1 bf=+0", res.Output)
}

func TestManagerErrors(t *testing.T) {
	tree := avl.New()
	m := NewManager(Config{})

	_, err := m.Execute(tree, "rotate 1")
	assert.True(t, errors.Is(err, ErrUnknownCommand))

	_, err = m.Execute(tree, "insert")
	assert.True(t, errors.Is(err, ErrMissingArgument))

	_, err = m.Execute(tree, "search one")
	assert.True(t, errors.Is(err, ErrInvalidKey))

	res, err := m.Execute(tree, "# nothing")
	assert.NoError(t, err)
	assert.Nil(t, res.Command)
}

func TestManagerUsage(t *testing.T) {
	m := NewManager(Config{})
	res, err := m.Execute(avl.New(), "help")
	require.NoError(t, err)
	assert.Contains(t, res.Output, "insert K...")
	assert.Contains(t, res.Output, "clear")
	assert.Equal(t, m.Usage(), res.Output)
}

func TestManagerNames(t *testing.T) {
	m := NewManager(Config{})

	assert.Equal(t, []string{
		"insert", "delete",
		"search", "inorder",
		"print", "check", "stats", "path", "min", "max",
		"clear",
		"help",
	}, m.Names())

	// Every primary name dispatches to a handler.
	for _, name := range m.Names() {
		assert.NotNil(t, m.lookup(name), name)
	}
}

func TestManagerPathRequiresKey(t *testing.T) {
	_, err := NewManager(Config{}).Execute(avl.New(), "path")
	assert.True(t, errors.Is(err, ErrMissingArgument))
}
