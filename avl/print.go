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

package avl

import (
	"fmt"
	"io"
	"strings"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes a sideways diagram of the tree to w: the right subtree is
// drawn above its parent and the left subtree below. With showHeights each
// key is followed by its stored height and balance factor.
func (tree *Tree) Fprint(w io.Writer, showHeights bool) error {
	if tree.root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	p := &printer{tree: tree, w: w, showHeights: showHeights}
	p.print(tree.root, "", rootBranch)
	return p.err
}

// String returns the diagram without heights.
func (tree *Tree) String() string {
	var b strings.Builder
	_ = tree.Fprint(&b, false)
	return b.String()
}

type printer struct {
	tree        *Tree
	w           io.Writer
	showHeights bool
	err         error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) print(n *node, prefix string, br branch) {
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		p.print(n.right, prefix+t, rightBranch)
	}

	switch br {
	case rootBranch:
		p.printf("%s|------+ ", prefix)
	case leftBranch:
		p.printf("%s\\------+ ", prefix)
	case rightBranch:
		p.printf("%s/------+ ", prefix)
	}
	if p.showHeights {
		p.printf("%d h=%d bf=%+d\n", n.key, n.height, p.tree.getBalanceFactor(n))
	} else {
		p.printf("%d\n", n.key)
	}

	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		p.print(n.left, prefix+t, leftBranch)
	}
}
