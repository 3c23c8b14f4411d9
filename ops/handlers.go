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
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
)

type names []string

func (n names) supports(name string) bool {
	for _, s := range n {
		if s == name {
			return true
		}
	}
	return false
}

func joinKeys(keys []int) string {
	if len(keys) == 0 {
		return "(none)"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

type insertHandler struct{}

func (h *insertHandler) Names() []string { return []string{"insert", "add", "i"} }
func (h *insertHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *insertHandler) Mutates() bool { return true }
func (h *insertHandler) Priority() int { return 1 }
func (h *insertHandler) Usage() string { return "insert K...   add keys (duplicates are ignored)" }

func (h *insertHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	keys, err := cmd.Keys()
	if err != nil {
		return "", err
	}
	var added, present []int
	for _, k := range keys {
		before := t.Len()
		t.Insert(k)
		if t.Len() > before {
			added = append(added, k)
		} else {
			present = append(present, k)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "inserted: %s", joinKeys(added))
	if len(present) > 0 {
		fmt.Fprintf(&b, "\nalready present: %s", joinKeys(present))
	}
	return b.String(), nil
}

type deleteHandler struct{}

func (h *deleteHandler) Names() []string { return []string{"delete", "del", "rm", "d"} }
func (h *deleteHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *deleteHandler) Mutates() bool { return true }
func (h *deleteHandler) Priority() int { return 1 }
func (h *deleteHandler) Usage() string { return "delete K...   remove keys (absent keys are ignored)" }

func (h *deleteHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	keys, err := cmd.Keys()
	if err != nil {
		return "", err
	}
	var removed, missing []int
	for _, k := range keys {
		before := t.Len()
		t.Delete(k)
		if t.Len() < before {
			removed = append(removed, k)
		} else {
			missing = append(missing, k)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "deleted: %s", joinKeys(removed))
	if len(missing) > 0 {
		fmt.Fprintf(&b, "\nnot found: %s", joinKeys(missing))
	}
	return b.String(), nil
}

type searchHandler struct{}

func (h *searchHandler) Names() []string { return []string{"search", "find", "s"} }
func (h *searchHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *searchHandler) Mutates() bool { return false }
func (h *searchHandler) Priority() int { return 2 }
func (h *searchHandler) Usage() string { return "search K...   report whether each key is stored" }

func (h *searchHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	keys, err := cmd.Keys()
	if err != nil {
		return "", err
	}
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%d: %t", k, t.Search(k))
	}
	return strings.Join(lines, "\n"), nil
}

type inOrderHandler struct{}

func (h *inOrderHandler) Names() []string { return []string{"inorder", "ls"} }
func (h *inOrderHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *inOrderHandler) Mutates() bool { return false }
func (h *inOrderHandler) Priority() int { return 2 }
func (h *inOrderHandler) Usage() string { return "inorder       list keys in ascending order" }

func (h *inOrderHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	return fmt.Sprint(t.InOrder()), nil
}

type printHandler struct {
	showHeights bool
}

func (h *printHandler) Names() []string { return []string{"print", "tree"} }
func (h *printHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *printHandler) Mutates() bool { return false }
func (h *printHandler) Priority() int { return 3 }
func (h *printHandler) Usage() string { return "print         draw the tree (right subtree on top)" }

func (h *printHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	var b strings.Builder
	if err := t.Fprint(&b, h.showHeights); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

type checkHandler struct{}

func (h *checkHandler) Names() []string { return []string{"check", "validate"} }
func (h *checkHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *checkHandler) Mutates() bool { return false }
func (h *checkHandler) Priority() int { return 3 }
func (h *checkHandler) Usage() string { return "check         verify ordering, balance and heights" }

func (h *checkHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ok (%d keys, height %d)", t.Len(), t.Height()), nil
}

type statsHandler struct{}

func (h *statsHandler) Names() []string { return []string{"stats"} }
func (h *statsHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *statsHandler) Mutates() bool { return false }
func (h *statsHandler) Priority() int { return 3 }
func (h *statsHandler) Usage() string { return "stats         size, height, root, min and max" }

func (h *statsHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	s := fmt.Sprintf("size=%d height=%d", t.Len(), t.Height())
	if root, ok := t.RootKey(); ok {
		lo, _ := t.Min()
		hi, _ := t.Max()
		s += fmt.Sprintf(" root=%d min=%d max=%d", root, lo, hi)
	}
	return s, nil
}

type pathHandler struct{}

func (h *pathHandler) Names() []string { return []string{"path"} }
func (h *pathHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *pathHandler) Mutates() bool { return false }
func (h *pathHandler) Priority() int { return 3 }
func (h *pathHandler) Usage() string { return "path K...     keys visited while searching for each K" }

func (h *pathHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	keys, err := cmd.Keys()
	if err != nil {
		return "", err
	}
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = describePath(t, k)
	}
	return strings.Join(lines, "\n"), nil
}

func describePath(t *avl.Tree, key int) string {
	path, found := t.Path(key)
	status := "not found"
	if found {
		status = "found"
	}
	if len(path) == 0 {
		return fmt.Sprintf("(%s)", status)
	}
	steps := make([]string, len(path))
	for i, k := range path {
		steps[i] = strconv.Itoa(k)
	}
	return fmt.Sprintf("%s (%s)", strings.Join(steps, " -> "), status)
}

// boundHandler answers min or max.
type boundHandler struct {
	max bool
}

func (h *boundHandler) Names() []string {
	if h.max {
		return []string{"max"}
	}
	return []string{"min"}
}
func (h *boundHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *boundHandler) Mutates() bool { return false }
func (h *boundHandler) Priority() int { return 3 }
func (h *boundHandler) Usage() string {
	if h.max {
		return "max           largest key"
	}
	return "min           smallest key"
}

func (h *boundHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	k, ok := t.Min()
	if h.max {
		k, ok = t.Max()
	}
	if !ok {
		return "(empty)", nil
	}
	return strconv.Itoa(k), nil
}

type clearHandler struct{}

func (h *clearHandler) Names() []string { return []string{"clear"} }
func (h *clearHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *clearHandler) Mutates() bool { return true }
func (h *clearHandler) Priority() int { return 4 }
func (h *clearHandler) Usage() string { return "clear         remove every key" }

func (h *clearHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	n := t.Len()
	t.Clear()
	return fmt.Sprintf("cleared %d keys", n), nil
}

type helpHandler struct {
	manager *Manager
}

func (h *helpHandler) Names() []string { return []string{"help", "?"} }
func (h *helpHandler) SupportsCommand(name string) bool { return names(h.Names()).supports(name) }
func (h *helpHandler) Mutates() bool { return false }
func (h *helpHandler) Priority() int { return 9 }
func (h *helpHandler) Usage() string { return "help          this list" }

func (h *helpHandler) Run(t *avl.Tree, cmd *Command) (string, error) {
	return h.manager.Usage(), nil
}
