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

// InOrder returns all keys in ascending order. The slice is freshly
// allocated on every call and is never nil.
func (tree *Tree) InOrder() []int {
	keys := make([]int, 0, tree.count)
	inOrderTraversal(tree.root, &keys)
	return keys
}

func inOrderTraversal(n *node, result *[]int) {
	if n == nil {
		return
	}
	inOrderTraversal(n.left, result)
	*result = append(*result, n.key)
	inOrderTraversal(n.right, result)
}
