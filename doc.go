// Package fp holds the small set of capabilities shared by the combinator
// packages of this module: the Option type used by lenses, the Copyable
// capability that expresses duplicable values, and a handful of numeric
// helpers with a documented overflow discipline.
//
// The combinators themselves live in the sub-packages:
//
//   - fn: combinators that build new functions from existing ones.
//   - tuple: the T2 pair type, its combinators and its lenses.
//   - lens: the Lens capability interface and generic lens utilities.
package fp
