// Package audit emits moderation-relevant events (logins, contributions,
// removal reports, deletions) as RFC5424 syslog lines, with optional
// persistence to a Postgres audit database.
//
// External HTTP responses stay opaque on purpose; the audit stream is
// where the specific failure and decision kinds are retained.
package audit
