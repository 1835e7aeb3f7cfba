// Package trace records what the front end is doing, for diagnosing slow
// inputs and stuck runs.
//
// Enable tracing via command-line flags:
//
//	swc diag --trace=- --trace-level=phase src/
//
// Levels:
//
//   - LevelOff: no tracing
//   - LevelError: failures only
//   - LevelPhase: driver operations and read/lex/parse phases
//   - LevelDetail: per-file events
//   - LevelDebug: everything
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Begin(ctx, trace.ScopePhase, "parse")
//	defer span.End("")
package trace
