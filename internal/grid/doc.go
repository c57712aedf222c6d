// Package grid loads slice operation declarations from HCL files.
//
// A grid file contains `slice "name" { ... }` blocks, each describing one
// slice operation: its bounds (signed start/end attributes, explicit
// start_tail/end_tail forms, or a textual expr) and optionally the input
// sequence it applies to. Operations without an input consume the
// process-level input at run time.
package grid
