// Package timezone keeps every time the service produces in the configured
// application timezone. Booking dates and time slots are local to the rental
// site, so "today" and "10:00" must mean the same thing on every host.
package timezone
