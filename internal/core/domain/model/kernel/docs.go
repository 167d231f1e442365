// Package kernel holds the value objects shared by every aggregate of the
// package tracking domain. Today that is the UUID identifier used for
// packages, status history records, senders and recipients.
package kernel
