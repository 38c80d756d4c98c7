// Package timezone pins every calendar decision of the service to one IANA zone.
//
// Visit dates, the "no past visits" rule and the two day cancellation window are all
// evaluated against Today(), so bookings behave the same regardless of the host clock zone.
//
// Usage:
//
//	now := timezone.Now()                             // current time in app timezone
//	today := timezone.Today()                         // midnight of the current day
//	visit, err := timezone.Parse("2006-01-02", date)  // calendar date in app timezone
//	label := timezone.Format(created, "2006-01-02")   // date part as seen by the store
//
// The zone is configured via APP_TIMEZONE and initialized when the package is imported.
package timezone
