// Package schema defines the typed errors reported when configuration
// values fail validation.
//
// A single failing field is a *ValidationError. Several failures are
// collected into an *AggregateError, which unwraps to every member so that
// errors.Is and errors.As see through it:
//
//	var verr *schema.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Println(verr.Key)
//	}
package schema
