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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(keys ...int) *Tree {
	tree := New()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree)
		rule    string
		key     int
	}{
		{
			name:    "ordering",
			corrupt: func(tree *Tree) { tree.root.left.key = 25 },
			rule:    RuleOrdering,
			key:     25,
		},
		{
			name:    "height",
			corrupt: func(tree *Tree) { tree.root.right.height = 4 },
			rule:    RuleHeight,
			key:     30,
		},
		{
			name: "balance",
			corrupt: func(tree *Tree) {
				// hang a correctly sized chain off the left leaf
				leaf := tree.root.left
				leaf.left = &node{key: 5, height: 2, left: newNode(1)}
				leaf.height = 3
				tree.root.height = 4
				tree.count += 2
			},
			rule: RuleBalance,
			key:  10,
		},
		{
			name:    "count",
			corrupt: func(tree *Tree) { tree.count = 7 },
			rule:    RuleCount,
			key:     20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(20, 10, 30)
			require.NoError(t, tree.Validate())

			tc.corrupt(tree)
			err := tree.Validate()
			require.Error(t, err)

			var ie *InvariantError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.rule, ie.Rule)
			assert.Equal(t, tc.key, ie.Key)
			assert.Contains(t, err.Error(), tc.rule)
		})
	}
}
