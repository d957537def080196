// Package writers turns extracted pairs into the output stream.
//
// Design:
//   • One goroutine owns the destination; the pipeline only sends pairs.
//   • Each pair is flushed as soon as it is written, so an aborted run keeps
//     every record accepted before the failure.
//   • Layout lives in internal/output; this package only moves bytes.
package writers
