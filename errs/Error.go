// Package errs lets sentinel errors be declared as untyped constants.
package errs

// Error is a string-backed error, so packages can declare their sentinels
// with the const keyword and callers can match them with errors.Is:
//
//	const ErrSomething errs.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }
