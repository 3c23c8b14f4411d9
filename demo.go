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
	"io"
	"slices"

	"github.com/cybrota/avltree/avl"
)

type scenario struct {
	name string
	run  func() error
}

func treeOf(keys ...int) *avl.Tree {
	tree := avl.New()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func expectOrder(tree *avl.Tree, want ...int) error {
	if got := tree.InOrder(); !slices.Equal(got, want) {
		return fmt.Errorf("in-order %v, want %v", got, want)
	}
	return nil
}

func expectRoot(tree *avl.Tree, want int) error {
	if got, ok := tree.RootKey(); !ok || got != want {
		return fmt.Errorf("root %d, want %d", got, want)
	}
	return nil
}

func expectSearch(tree *avl.Tree, want bool, keys ...int) error {
	for _, k := range keys {
		if tree.Search(k) != want {
			return fmt.Errorf("search(%d) = %t, want %t", k, !want, want)
		}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func demoScenarios() []scenario {
	return []scenario{
		{
			name: "insert and search",
			run: func() error {
				tree := treeOf(10, 20, 30, 40, 50, 25)
				return firstError(
					expectSearch(tree, false, 15),
					expectSearch(tree, true, 10, 20, 30, 40, 50, 25),
					tree.Validate(),
				)
			},
		},
		{
			name: "in-order traversal",
			run: func() error {
				tree := treeOf(30, 20, 40, 10, 25, 35, 50)
				return firstError(
					expectOrder(tree, 10, 20, 25, 30, 35, 40, 50),
					tree.Validate(),
				)
			},
		},
		{
			name: "left-left rotation",
			run: func() error {
				tree := treeOf(30, 20, 10)
				return firstError(expectOrder(tree, 10, 20, 30), expectRoot(tree, 20))
			},
		},
		{
			name: "right-left rotation",
			run: func() error {
				tree := treeOf(10, 30, 20)
				return firstError(expectOrder(tree, 10, 20, 30), expectRoot(tree, 20))
			},
		},
		{
			name: "deletion",
			run: func() error {
				tree := treeOf(9, 5, 10, 0, 6, 11, -1, 1, 2)
				for _, k := range []int{10, 5, -1} {
					tree.Delete(k)
				}
				return firstError(
					expectSearch(tree, true, 9, 0, 6, 11, 1, 2),
					expectSearch(tree, false, 10, 5, -1),
					tree.Validate(),
				)
			},
		},
	}
}

// runDemo runs every scenario and reports each one. It returns an error if
// any scenario failed.
func runDemo(w io.Writer) error {
	failed := 0
	for i, sc := range demoScenarios() {
		label := string(rune('A' + i))
		if err := sc.run(); err != nil {
			failed++
			fmt.Fprintf(w, "%sFAIL%s %s: %s: %v\n", Error, Reset, label, sc.name, err)
			continue
		}
		fmt.Fprintf(w, "%sPASS%s %s: %s\n", Green, Reset, label, sc.name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(demoScenarios()))
	}
	return nil
}
