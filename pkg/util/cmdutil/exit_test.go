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

package cmdutil

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", errorMessage(errors.New("boom")))

	var single *multierror.Error
	single = multierror.Append(single, errors.New("only"))
	assert.Equal(t, "only", errorMessage(single))

	var multi *multierror.Error
	multi = multierror.Append(multi, errors.New("first"), errors.New("second"))
	assert.Equal(t, "2 errors occurred:\n    0) first\n    1) second", errorMessage(multi))
}

func TestDetailedError(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(errors.New("inner"), "outer")
	msg := DetailedError(err)
	assert.Contains(t, msg, "outer: inner")
	assert.Contains(t, msg, "TestDetailedError")
}
