// Package timezone pins all time handling to the application timezone.
//
// The location is read once from the APP_TIMEZONE environment variable
// (an IANA name such as "UTC" or "Africa/Lagos") when the package is
// first imported, falling back to UTC when unset or invalid.
//
//	now := timezone.Now()
//	t, err := timezone.Parse("2006-01-02", "2024-06-01")
//	s := timezone.Format(t, time.RFC3339)
//
// Booking date arithmetic depends on every timestamp sharing one
// location, so code should reach for this package instead of time.Now.
package timezone
