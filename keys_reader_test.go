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
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", nil},
		{"whitespace", "10 20\t30\n40", []int{10, 20, 30, 40}},
		{"commas", "1,2, 3 ,4", []int{1, 2, 3, 4}},
		{"negatives", "-5 0 +7", []int{-5, 0, 7}},
		{"comments", "# header\n3 4 # trailing\n\n5", []int{3, 4, 5}},
		{"duplicates kept", "9 9 9", []int{9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadKeys(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadKeys_ParseError(t *testing.T) {
	_, err := ReadKeys(strings.NewReader("1 2\n3 four 5\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "four", perr.Text)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadKeys_LongLine(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20000; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(' ')
	}

	got, err := ReadKeys(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Len(t, got, 20000)
	assert.Equal(t, 19999, got[len(got)-1])
}

func TestReadKeysFile(t *testing.T) {
	path := writeFile(t, "keys.txt", "30 20 10\n")

	got, err := ReadKeysFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20, 10}, got)
}

func TestReadKeysFile_Errors(t *testing.T) {
	_, err := ReadKeysFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	path := writeFile(t, "bad.txt", "1 x\n")
	_, err = ReadKeysFile(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), path)
}
