// Package errs holds the typed errors shared by the domain, the repositories and
// the use case handlers.
//
// Every type pairs with a sentinel so callers can branch with errors.Is:
//   - ObjectNotFoundError (ErrObjectNotFound): a package, sender or recipient is missing
//   - ValueIsInvalidError (ErrValueIsInvalid): a value failed a rule
//   - ValueIsRequiredError (ErrValueIsRequired): a mandatory value is absent
//   - ValueIsOutOfRangeError (ErrValueIsOutOfRange): a value is outside its bounds
//   - VersionIsInvalidError (ErrVersionIsInvalid): an optimistic write lost to a concurrent one
//
// Handlers translate these into fixed failure messages; only VersionIsInvalidError
// is retried.
package errs
