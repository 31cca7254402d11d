// Package edit implements the pure document, selection, and change model for
// markedit.
//
// Offsets are bytes. Ranges are half-open spans in document coordinates:
// [From, To). A transaction is an atomic batch of changes plus the resulting
// selection; all change offsets refer to the document the transaction was
// computed against.
package edit
