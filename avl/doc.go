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

// Package avl implements a height-balanced binary search tree of unique
// integer keys.
//
// Every mutation descends from the root, changes one position at the
// bottom and then walks back up, fixing heights and rotating wherever a
// node's subtrees differ in height by more than one. A Tree is not safe
// for concurrent use; callers that share one must serialize access.
package avl
