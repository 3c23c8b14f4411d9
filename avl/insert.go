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

// Insert adds key to the tree. Inserting a key that is already present
// leaves the tree unchanged.
func (tree *Tree) Insert(key int) {
	tree.root = tree.insertRecursive(tree.root, key)
}

func (tree *Tree) insertRecursive(n *node, key int) *node {
	if n == nil {
		tree.count++
		return newNode(key)
	}

	if key < n.key {
		n.left = tree.insertRecursive(n.left, key)
	} else if key > n.key {
		n.right = tree.insertRecursive(n.right, key)
	} else {
		// duplicate
		return n
	}

	tree.updateHeight(n)
	return tree.rebalance(n)
}
