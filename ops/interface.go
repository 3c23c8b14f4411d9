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
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/mattn/go-shellwords"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidKey      = errors.New("invalid key")
)

// Handler runs one family of tree operations.
type Handler interface {
	Run(t *avl.Tree, cmd *Command) (string, error)
	Names() []string // primary name first, then aliases
	SupportsCommand(name string) bool
	Mutates() bool
	Priority() int // Lower number = higher priority
	Usage() string
}

type Command struct {
	Parts    []string
	Name     string
	Args     []string
	FullName string
}

func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Name:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Keys parses every argument as an int key. At least one is required.
func (c *Command) Keys() ([]int, error) {
	if len(c.Args) == 0 {
		return nil, fmt.Errorf("%s: %w: expected at least one key", c.Name, ErrMissingArgument)
	}
	keys := make([]int, 0, len(c.Args))
	for _, arg := range c.Args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w %q", c.Name, ErrInvalidKey, arg)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ParseLine splits a script or prompt line into a Command. Blank lines and
// lines starting with '#' yield a nil Command and no error.
func ParseLine(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return NewCommand(parts), nil
}
