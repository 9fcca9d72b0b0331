// Package presscut extracts article records from saved pages of Polish
// news publishers. A page is scanned once, tag by tag, by a rule table
// chosen for its publisher; the result is an Article carrying the
// headline, byline, dates, body text with inline link markers, and the
// residual structured-data metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/).
package presscut
