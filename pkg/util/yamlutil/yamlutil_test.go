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

package yamlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pulumi/rune/pkg/diag"
)

const options = `skipLink: true
externs:
  - std::io::println
  - "bad item"
`

func parse(t *testing.T, src string) *yaml.Node {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	return &node
}

func TestGet(t *testing.T) {
	t.Parallel()

	doc := parse(t, options)
	externs, ok, err := Get(doc, "externs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, yaml.SequenceNode, externs.Kind)

	first, ok, err := Get(externs, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "std::io::println", first.Value)

	_, ok, err = Get(externs, 2)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Get(doc, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = Get(externs, "key")
	assert.EqualError(t, err, "[3:3] unsupported index type string, found sequence node and expected int index")

	_, _, err = Get(first, 0)
	assert.Error(t, err)

	_, ok, err = Get(&yaml.Node{Kind: yaml.DocumentNode}, "externs")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	doc := parse(t, options)
	externs, _, err := Get(doc, "externs")
	require.NoError(t, err)

	plain, _, err := Get(externs, 0)
	require.NoError(t, err)
	span := Span(plain, []byte(options))
	assert.Equal(t, "std::io::println", options[span.Start:span.End])

	quoted, _, err := Get(externs, 1)
	require.NoError(t, err)
	span = Span(quoted, []byte(options))
	assert.Equal(t, `"bad item"`, options[span.Start:span.End])

	loc := diag.NewDocument("rune.yaml", []byte(options)).Location(span)
	assert.Equal(t, diag.Pos{Line: 4, Column: 5}, loc.Start)
}
