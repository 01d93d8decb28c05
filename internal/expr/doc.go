// Package expr expands the textual build-description expressions that
// predictors consume: property references `$(Name)`, item lists `@(Type)`,
// item lists with a separator `@(Type, 'sep')`, item transforms
// `@(Type->'%(Filename).out')` and `%XX` escapes.
//
// Bare per-item metadata tokens `%(Type.Name)` outside of a transform are
// batching tokens. Expand leaves them untouched; the copy-task correlator
// rewrites them into transforms before expanding.
//
// Property functions (`$([System.IO.Path]::Combine(...))`, `$(Foo.Trim())`)
// and item functions (`@(Foo->Distinct())`) are not supported and yield
// ErrUnsupported.
package expr
