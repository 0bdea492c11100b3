// Package intern provides the string interning subsystem.
//
// Tag and attribute names repeat constantly in a UI tree. Interning maps
// each distinct string to a small integer Handle once, so tree comparison
// during diffing is integer equality instead of string equality.
//
// A static table of common HTML tag and attribute names is compiled in;
// every other string goes into an append-only dynamic table. Handles are
// never invalidated or recycled, a deliberate trade-off favoring
// implementation simplicity over memory reclamation in long-lived
// processes.
package intern
