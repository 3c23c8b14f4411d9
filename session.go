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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/ops"
	"github.com/rs/zerolog"
)

// Session owns a tree and runs text commands against it. The revision
// counter moves every time a command changes the tree's contents.
type Session struct {
	tree     *avl.Tree
	manager  *ops.Manager
	revision int
	log      zerolog.Logger
}

func NewSession(tree *avl.Tree, cfg *Config, log zerolog.Logger) *Session {
	return &Session{
		tree:    tree,
		manager: ops.NewManager(ops.Config{ShowHeights: cfg.Tree.ShowHeights}),
		log:     log,
	}
}

func (s *Session) Tree() *avl.Tree {
	return s.tree
}

func (s *Session) Revision() int {
	return s.revision
}

// Commands lists the operation names the session accepts.
func (s *Session) Commands() []string {
	return s.manager.Names()
}

func (s *Session) Execute(line string) (ops.Result, error) {
	res, err := s.manager.Execute(s.tree, line)
	if res.Mutated {
		s.revision++
	}
	if err != nil {
		s.log.Debug().Err(err).Str("line", line).Msg("command failed")
		return res, err
	}
	if res.Command != nil {
		s.log.Debug().
			Str("cmd", res.Command.Name).
			Bool("mutated", res.Mutated).
			Int("size", s.tree.Len()).
			Int("revision", s.revision).
			Msg("command executed")
	}
	return res, nil
}

// RunScript executes r line by line, echoing each command and its output
// to w. It stops at the first failing line.
func (s *Session) RunScript(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		res, err := s.Execute(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if res.Command == nil {
			continue
		}

		fmt.Fprintf(w, "> %s\n", strings.TrimSpace(line))
		if res.Output != "" {
			fmt.Fprintln(w, res.Output)
		}
	}

	return scanner.Err()
}
