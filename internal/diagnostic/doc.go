// Package diagnostic provides structured warnings and errors for checks that
// look at a whole model family at once.
//
// Key capabilities:
//   - Type names referenced by fields but never defined
//   - Child fields that the overflow rule can never fill
//   - Go struct fields whose shape disagrees with the declared type
package diagnostic
