// Package pathid canonicalizes and compares filesystem paths the way the
// prediction engine needs them: separators normalized to the host's, relative
// paths anchored to a project directory, and (by default) case-insensitive
// comparison matching common build-tool conventions.
//
// Everything in this package is lexical. No function touches the filesystem,
// so canonicalizing a path that does not exist yet (a build output, say) is
// the normal case rather than an error.
package pathid
