// Package fn provides combinators that build new functions out of existing
// functions and values: constant functions, argument reordering, argument
// dropping and partial application for functions of up to two arguments.
//
// None of the combinators mutate their inputs. Values captured by a
// returned closure are copied with fp.Clone, so types holding reference
// state should implement fp.Copyable to get independent copies.
package fn
