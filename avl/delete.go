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

// Delete removes key from the tree. Deleting an absent key is a no-op.
//
// A node with two children is not unlinked itself: it takes over the key
// of its in-order successor, and the successor is removed from the right
// subtree instead.
func (tree *Tree) Delete(key int) {
	tree.root = tree.deleteRecursive(tree.root, key)
}

func (tree *Tree) deleteRecursive(n *node, key int) *node {
	if n == nil {
		return nil // Key not found
	}

	if key < n.key {
		n.left = tree.deleteRecursive(n.left, key)
	} else if key > n.key {
		n.right = tree.deleteRecursive(n.right, key)
	} else {
		// Zero or one child: splice the child into our place.
		if n.left == nil {
			tree.count--
			return n.right
		}
		if n.right == nil {
			tree.count--
			return n.left
		}
		// Two children
		successor := tree.findMin(n.right)
		n.key = successor.key
		n.right = tree.deleteRecursive(n.right, successor.key)
	}

	tree.updateHeight(n)
	return tree.rebalance(n)
}

func (tree *Tree) findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (tree *Tree) findMax(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}
