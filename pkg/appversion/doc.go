// Package appversion implements the application version descriptor.
//
// A [Descriptor] holds the semantic version of an application together with
// its release metadata: pre-release and build labels, deploy timestamp,
// license, copyright, the described VCS revision, and a list of credited
// authors. Descriptors are created with [New], optionally hydrated from a
// version file with [Descriptor.ReadFile], changed through the chainable
// setters, and persisted with [Descriptor.DumpConfig].
//
// Setters never fail. Invalid input is normalized or dropped:
//
//   - Version numbers are coerced to non-negative integers.
//   - Labels are scrubbed to [A-Za-z0-9.] (see package label).
//   - Deploy timestamps are parsed and stored in canonical form, or dropped.
//   - Malformed credit strings are ignored.
package appversion
