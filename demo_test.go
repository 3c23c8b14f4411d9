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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(demoScenarios()))
	for i, line := range lines {
		assert.Contains(t, line, "PASS")
		assert.Contains(t, line, string(rune('A'+i))+":")
	}
}

func TestExpectHelpers(t *testing.T) {
	tree := treeOf(2, 1, 3)

	assert.NoError(t, expectOrder(tree, 1, 2, 3))
	assert.Error(t, expectOrder(tree, 3, 2, 1))
	assert.NoError(t, expectRoot(tree, 2))
	assert.Error(t, expectRoot(tree, 1))
	assert.NoError(t, expectSearch(tree, true, 1, 2, 3))
	assert.Error(t, expectSearch(tree, false, 2))
	assert.Nil(t, firstError(nil, nil))
}
