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

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeNever(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Never.Colorize(SpecError, "plain"))
	assert.False(t, Never.Enabled())
}

func TestColorizeAlways(t *testing.T) {
	t.Parallel()

	s := Always.Colorize(SpecError, "red")
	assert.True(t, Always.Enabled())
	assert.NotEqual(t, "red", s)
	assert.Contains(t, s, "red")
	assert.Contains(t, s, "\x1b[")
}
