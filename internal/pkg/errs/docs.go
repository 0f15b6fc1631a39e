// Package errs holds the error vocabulary shared by the geoshop domain,
// repositories and HTTP adapter.
//
// Each kind has a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrVersionIsInvalid) and a struct
// type that carries the offending parameter and an optional cause. The struct
// types unwrap to their sentinel, so a caller classifies with errors.Is even
// after the error went through fmt.Errorf("%w") or errors.Join:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		return http.StatusNotFound
//	}
//
// Lifecycle methods report a forbidden transition as a ValueIsInvalidError
// whose ParamName is "status is invalid" (orders) or "item status is invalid"
// (order items); the cause names the status that was found.
//
// A lost optimistic-lock race on an order is a VersionIsInvalidError.
package errs
