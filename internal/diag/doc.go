// Package diag defines the diagnostic model the type relation and overload
// resolver report through.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture the
//     findings internal/resolve produces while scoring and materializing a
//     call.
//   - Offer light-weight utilities (Reporter, Bag) that let a scorer emit
//     diagnostics without coupling to how the caller stores or prints them.
//   - Model fix suggestions as structured edits a caller can materialise and
//     optionally apply, even though this core never applies one itself.
//
// # Scope
//
// Package diag performs no IO and has no interactive behaviour. Its only
// formatting is FormatGoldenDiagnostics and FormatShortDiagnostics
// (golden.go), which render diagnostics as plain single-line text for golden
// tests. It has no file-writing, CLI, or pretty-printing responsibilities; a
// caller that wants those renders Diagnostic values itself.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// Notes should be used sparingly: each note must add new context (e.g. "value
// bound here") rather than repeating the diagnostic message.
//
// # Fix suggestions
//
// Fix represents a possible correction. Each fix carries a Title and the
// concrete Edits (Span + new text) it would apply; Fixes are intentionally
// data-only, since this package never applies one.
//
// # Emitting diagnostics
//
// A scorer should use a diag.Reporter to decouple emission from storage.
// internal/resolve, for example, constructs a ReportBuilder via the helper
// functions ReportError/ReportWarning/ReportInfo and calls Emit once the
// candidate loop has decided a call cannot be resolved.
//
// When no additional metadata is needed, callers may call Reporter.Report(...)
// directly. For convenience, diag.BagReporter aggregates diagnostics into a
// Bag (Add, HasErrors, Items); a Bag does not sort, deduplicate, or filter.
package diag
