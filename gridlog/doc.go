// Package gridlog wraps zerolog with the error taxonomy of spec.md §7:
// InputMissing, MalformedRecord, TopologyInvariant, Numerical, Degenerate,
// and PolicyWarning each map to a log level and a structured "kind" field.
// Every Logger carries the process-wide run uuid; a per-country child
// Logger also carries a "country" field, which is what tells log lines
// from parallel country goroutines apart.
package gridlog
