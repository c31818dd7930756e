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

// Package tracing starts the spans that time the phases of a compilation.
package tracing

import (
	"context"

	"github.com/opentracing/opentracing-go"
)

// StartPhase starts a span named after a compiler phase, as a child of any span already in ctx, and returns it along
// with a context carrying it.  A nil tracer uses the global one.
func StartPhase(ctx context.Context, tracer opentracing.Tracer, phase string, file string) (opentracing.Span,
	context.Context) {
	if tracer == nil {
		tracer = opentracing.GlobalTracer()
	}
	return opentracing.StartSpanFromContextWithTracer(ctx, tracer, "rune-"+phase,
		opentracing.Tag{Key: "file", Value: file})
}

// Fail marks the span as failed with the given error, if there is one.
func Fail(span opentracing.Span, err error) {
	if err != nil {
		span.SetTag("error", true)
		span.LogKV("message", err.Error())
	}
}
