// Package party holds the reference entities a package points at: the Sender
// who ships it and the Recipient who receives it. Both are created on their
// own and are never modified by package operations.
package party
