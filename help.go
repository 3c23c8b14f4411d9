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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/cybrota/avltree/ops"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A self-balancing binary search tree of integer keys, with a terminal UI and a script runner to
drive it. Every insert and delete keeps the heights of sibling subtrees within one of each other.

Built with Go %s

# 1. Commands
* **run** [--keys FILE]: interactive UI (default)
* **load** FILE [--print] [--check]: insert every key in FILE, report duplicates
* **exec** SCRIPT: run one operation per line, "-" reads stdin
* **demo**: run the built-in scenarios
* **settings**: show or create ~/.avltree.yaml

# 2. Operations
Available in scripts and at the UI prompt:

%s

# 3. Keys files
Integers separated by spaces, commas or newlines. Text after '#' is ignored.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), operationList())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

func operationList() string {
	usage := ops.NewManager(ops.Config{}).Usage()
	return "```\n" + usage + "\n```"
}
