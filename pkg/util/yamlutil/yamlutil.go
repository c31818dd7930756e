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

// Package yamlutil locates values within parsed YAML documents, so that problems can be reported where they appear.
package yamlutil

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pulumi/rune/pkg/diag"
)

type yamlError struct {
	*yaml.Node
	err string
}

func (e yamlError) Error() string {
	return fmt.Sprintf("[%v:%v] %v", e.Node.Line, e.Node.Column, e.err)
}

// Errorf creates an error that carries the position of the node it is about.
func Errorf(node *yaml.Node, format string, a ...interface{}) error {
	return yamlError{Node: node, err: fmt.Sprintf(format, a...)}
}

// Get obtains the value at an index of a sequence or under a string key of a mapping.  It returns the node and true if
// successful; nil and false if out of bounds or not found; and nil, false, and an error if the node cannot be indexed.
func Get(l *yaml.Node, key interface{}) (*yaml.Node, bool, error) {
	switch l.Kind {
	case yaml.DocumentNode:
		// Documents contain a single element.
		if len(l.Content) == 0 {
			return nil, false, nil
		}
		return Get(l.Content[0], key)
	case yaml.SequenceNode:
		idx, ok := key.(int)
		if !ok {
			return nil, false, Errorf(l, "unsupported index type %T, found sequence node and expected int index", key)
		}
		if idx >= 0 && idx < len(l.Content) {
			return l.Content[idx], true, nil
		}
		return nil, false, nil
	case yaml.MappingNode:
		k, ok := key.(string)
		if !ok {
			return nil, false, Errorf(l, "unsupported key type %T, found mapping node and expected string key", key)
		}
		for i := 0; i+1 < len(l.Content); i += 2 {
			if l.Content[i].Kind == yaml.ScalarNode && l.Content[i].Value == k {
				return l.Content[i+1], true, nil
			}
		}
		return nil, false, nil
	case yaml.ScalarNode:
		return nil, false, Errorf(l, "failed to get key %v from scalar: %v", key, l.Value)
	case yaml.AliasNode:
		return nil, false, Errorf(l, "aliases are not supported: %v", l.Value)
	default:
		return nil, false, Errorf(l, "failed to parse yaml node: %v", l.Value)
	}
}

// Span returns the byte range of a scalar node within the source it was parsed from.  Quotes are included.
func Span(node *yaml.Node, src []byte) diag.Span {
	start := offset(src, node.Line, node.Column)
	end := start + len(node.Value)
	if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		end += 2
	}
	if end > len(src) {
		end = len(src)
	}
	return diag.NewSpan(start, end)
}

// offset converts a 1-based line and column, counted in characters, into a byte offset.
func offset(src []byte, line, column int) int {
	pos := 0
	for l := 1; l < line && pos < len(src); pos++ {
		if src[pos] == '\n' {
			l++
		}
	}
	for c := 1; c < column && pos < len(src); c++ {
		_, size := utf8.DecodeRune(src[pos:])
		pos += size
	}
	return pos
}
