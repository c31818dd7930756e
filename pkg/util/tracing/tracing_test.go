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

package tracing

import (
	"context"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPhaseNests(t *testing.T) {
	t.Parallel()

	tracer := mocktracer.New()
	outer, ctx := StartPhase(context.Background(), tracer, "compile", "main.rn")
	inner, innerCtx := StartPhase(ctx, tracer, "parse", "main.rn")
	assert.Same(t, inner, opentracing.SpanFromContext(innerCtx))

	Fail(inner, errors.New("boom"))
	Fail(outer, nil)
	inner.Finish()
	outer.Finish()

	finished := tracer.FinishedSpans()
	require.Len(t, finished, 2)
	assert.Equal(t, "rune-parse", finished[0].OperationName)
	assert.Equal(t, "main.rn", finished[0].Tag("file"))
	assert.Equal(t, true, finished[0].Tag("error"))
	assert.Equal(t, finished[1].SpanContext.SpanID, finished[0].ParentID)

	assert.Equal(t, "rune-compile", finished[1].OperationName)
	assert.Nil(t, finished[1].Tag("error"))
}
