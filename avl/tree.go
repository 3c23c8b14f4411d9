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

// Tree is an AVL tree of unique int keys. The zero value is an empty tree.
type Tree struct {
	root  *node
	count int
}

func New() *Tree {
	return &Tree{root: nil}
}

func (tree *Tree) getHeight(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (tree *Tree) updateHeight(n *node) {
	n.height = max(tree.getHeight(n.left), tree.getHeight(n.right)) + 1
}

func (tree *Tree) getBalanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return tree.getHeight(n.left) - tree.getHeight(n.right)
}

// rebalance restores the AVL property at n, whose children are already
// balanced and whose height is current. It returns the new subtree root.
func (tree *Tree) rebalance(n *node) *node {
	balanceFactor := tree.getBalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(n.left) >= 0 {
			return tree.rotateRight(n)
		}
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(n.right) <= 0 {
			return tree.rotateLeft(n)
		}
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n)
	}

	return n
}

// Len returns the number of keys stored in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree) Height() int {
	return tree.getHeight(tree.root)
}

// RootKey returns the key held by the root node.
func (tree *Tree) RootKey() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.root.key, true
}

// Clear removes every key.
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
