// Package seqsource resolves a sequence name to its full nucleotide string.
//
// Every Provider acquires its resources (files, HTTP clients) lazily on the
// first Resolve and releases them on Close. Close is idempotent. Resolve is
// deterministic for a given name within a run, so callers may cache freely.
package seqsource
