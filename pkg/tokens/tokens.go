// Copyright 2016-2026, Pulumi Corporation.
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

// Package tokens contains the names used to refer to items (functions and types) across compilation units, along
// with the hashes that identify them in bytecode.
package tokens

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ItemDelimiter separates the components of an item path.
const ItemDelimiter = "::"

// Name is an identifier.  It conforms to the regex [A-Za-z_][A-Za-z0-9_]*.
type Name string

func (nm Name) String() string { return string(nm) }

var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsName checks whether a string is a legal Name.
func IsName(s string) bool {
	return s != "" && nameRegexp.MatchString(s)
}

// Item is a fully qualified path to a function or type, with components delimited by "::" (e.g. `std::io::println`).
type Item string

// NewItem joins the given components into an item path.
func NewItem(names ...Name) Item {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return Item(strings.Join(parts, ItemDelimiter))
}

// IsItem checks whether a string is a legal item path.
func IsItem(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ItemDelimiter) {
		if !IsName(part) {
			return false
		}
	}
	return true
}

// Components splits the item into its names.
func (it Item) Components() []Name {
	if it == "" {
		return nil
	}
	parts := strings.Split(string(it), ItemDelimiter)
	names := make([]Name, len(parts))
	for i, p := range parts {
		names[i] = Name(p)
	}
	return names
}

// Last returns the final component of the item, e.g. `println` for `std::io::println`.
func (it Item) Last() Name {
	comps := it.Components()
	if len(comps) == 0 {
		return ""
	}
	return comps[len(comps)-1]
}

// Extend returns a new item with the given name appended.
func (it Item) Extend(name Name) Item {
	if it == "" {
		return Item(name)
	}
	return it + Item(ItemDelimiter) + Item(name)
}

func (it Item) String() string { return string(it) }

// Hash is the identity of an item in bytecode.  Call instructions reference functions by hash only; the linker maps
// hashes back onto the functions that implement them.
type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// Hash kinds keep the function and type namespaces apart for the same item.
const (
	functionKind = "fn"
	typeKind     = "type"
)

func hashOf(kind string, it Item) Hash {
	d := xxhash.New()
	_, _ = d.WriteString(kind)
	for _, comp := range it.Components() {
		_, _ = d.WriteString(ItemDelimiter)
		_, _ = d.WriteString(string(comp))
	}
	return Hash(d.Sum64())
}

// FunctionHash computes the hash used to call the function at the given item path.
func FunctionHash(it Item) Hash {
	return hashOf(functionKind, it)
}

// TypeHash computes the hash used to identify the type at the given item path.
func TypeHash(it Item) Hash {
	return hashOf(typeKind, it)
}
