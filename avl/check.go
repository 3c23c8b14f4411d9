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

// Invariant names reported by Validate.
const (
	RuleOrdering = "ordering"
	RuleBalance  = "balance"
	RuleHeight   = "height"
	RuleCount    = "count"
)

// InvariantError describes the first broken invariant found by Validate.
type InvariantError struct {
	Key    int
	Rule   string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("avl: %s invariant broken at key %d: %s", e.Rule, e.Key, e.Detail)
}

// Validate walks the whole tree and checks key ordering, the balance
// bound, stored heights and the key count. It returns nil for a sound
// tree and an *InvariantError otherwise.
func (tree *Tree) Validate() error {
	nodes := 0
	if err := tree.checkup(tree.root, nil, nil, &nodes); err != nil {
		return err
	}
	if nodes != tree.count {
		key, _ := tree.RootKey()
		return &InvariantError{
			Key:    key,
			Rule:   RuleCount,
			Detail: fmt.Sprintf("found %d nodes, tree records %d", nodes, tree.count),
		}
	}
	return nil
}

// checkup verifies the subtree at n, whose keys must lie strictly between
// low and high (nil meaning unbounded).
func (tree *Tree) checkup(n *node, low, high *int, nodes *int) error {
	if n == nil {
		return nil
	}
	*nodes++

	if low != nil && n.key <= *low {
		return &InvariantError{Key: n.key, Rule: RuleOrdering, Detail: fmt.Sprintf("not greater than ancestor %d", *low)}
	}
	if high != nil && n.key >= *high {
		return &InvariantError{Key: n.key, Rule: RuleOrdering, Detail: fmt.Sprintf("not less than ancestor %d", *high)}
	}

	if err := tree.checkup(n.left, low, &n.key, nodes); err != nil {
		return err
	}
	if err := tree.checkup(n.right, &n.key, high, nodes); err != nil {
		return err
	}

	want := max(tree.getHeight(n.left), tree.getHeight(n.right)) + 1
	if n.height != want {
		return &InvariantError{Key: n.key, Rule: RuleHeight, Detail: fmt.Sprintf("stored %d, computed %d", n.height, want)}
	}
	if bf := tree.getBalanceFactor(n); bf < -1 || bf > 1 {
		return &InvariantError{Key: n.key, Rule: RuleBalance, Detail: fmt.Sprintf("balance factor %+d", bf)}
	}
	return nil
}
