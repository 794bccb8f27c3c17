// Package commit describes the current source revision of a project.
//
// A [Resolver] never fails outright: it returns a [Result] tagged as found,
// empty or failed, so callers can degrade to a marker string instead of
// aborting. [ExecResolver] shells out to `git describe`, [GitResolver]
// performs an equivalent lookup in-process with go-git.
package commit
