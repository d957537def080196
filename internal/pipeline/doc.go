// Package pipeline drives coordinate files line by line through parse,
// resolve, extract, name and write.
//
// One line is finished before the next is read, so name reservation and
// output order follow input order. Fatal errors abort the run; records
// already handed to the sink stay written.
package pipeline
