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

import "fmt"

// rotateRight lifts y.left into y's place. y must have a left child; the
// caller only rotates after the balance factor proved that side taller.
func (tree *Tree) rotateRight(y *node) *node {
	if y == nil || y.left == nil {
		panic(fmt.Sprintf("avl: rotateRight on node without left child (%v)", describe(y)))
	}

	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	// y is now below x
	tree.updateHeight(y)
	tree.updateHeight(x)

	return x
}

// rotateLeft is the mirror of rotateRight and requires x.right.
func (tree *Tree) rotateLeft(x *node) *node {
	if x == nil || x.right == nil {
		panic(fmt.Sprintf("avl: rotateLeft on node without right child (%v)", describe(x)))
	}

	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	tree.updateHeight(x)
	tree.updateHeight(y)

	return y
}

func describe(n *node) string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("key=%d height=%d", n.key, n.height)
}
