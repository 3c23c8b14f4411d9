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

// Search reports whether key is stored in the tree.
func (tree *Tree) Search(key int) bool {
	n := tree.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Path returns the keys visited while searching for key, starting at the
// root. The last element is key itself when found is true.
func (tree *Tree) Path(key int) (path []int, found bool) {
	for n := tree.root; n != nil; {
		path = append(path, n.key)
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return path, true
		}
	}
	return path, false
}

// Min returns the smallest key.
func (tree *Tree) Min() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.findMin(tree.root).key, true
}

// Max returns the largest key.
func (tree *Tree) Max() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.findMax(tree.root).key, true
}
