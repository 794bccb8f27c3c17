// Package deploytime parses deploy timestamp expressions.
//
// The accepted grammar is deliberately small and explicit:
//
//   - the keywords "now", "today", "yesterday" and "tomorrow" (case-insensitive);
//     the day keywords resolve to midnight;
//   - "@" followed by a Unix timestamp in seconds;
//   - RFC 3339 (with or without fractional seconds);
//   - "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04",
//     "2006-01-02";
//   - "2006/01/02 15:04:05", "2006/01/02";
//   - RFC 1123, RFC 1123 with numeric zone, RFC 822, RFC 822 with numeric zone;
//   - "02 Jan 2006 15:04", "Jan 2 2006", "January 2, 2006".
//
// Layouts without a zone are interpreted in the parser's location. Results
// are rendered in that same location using [Layout].
package deploytime
