// Package errs holds the typed validation and lookup errors shared by the
// domain model, the use cases and the HTTP adapter.
//
// Error types:
//   - ValueIsRequiredError: a mandatory value is missing or zero
//   - ValueIsInvalidError: a value is malformed, e.g. an unknown priority or a non-positive capacity
//   - ValueIsOutOfRangeError: a value lies outside [Min, Max], e.g. a negative tick length
//   - ObjectNotFoundError: no drone or order has the requested id
//
// Every type unwraps to its sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound), so callers classify a failure
// with errors.Is and read the details with errors.As:
//
//	if errors.Is(err, errs.ErrValueIsOutOfRange) {
//	    var rangeErr *errs.ValueIsOutOfRangeError
//	    if errors.As(err, &rangeErr) {
//	        log.Printf("%s must lie in [%v, %v]", rangeErr.ParamName, rangeErr.Min, rangeErr.Max)
//	    }
//	}
package errs
