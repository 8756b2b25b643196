package laws

import "github.com/hance08/optbank/internal/optional"

// LeftIdentity checks that lifting x and flat-mapping f equals f(x).
func LeftIdentity[A, B any](x A, f func(A) optional.Optional[B], eq func(B, B) bool) bool {
	return optional.EqualFunc(optional.FlatMap(optional.OfNullable(&x), f), f(x), eq)
}

// Associativity checks (m >>= f) >>= g against m >>= (x -> f(x) >>= g).
func Associativity[A, B, C any](
	m optional.Optional[A],
	f func(A) optional.Optional[B],
	g func(B) optional.Optional[C],
	eq func(C, C) bool,
) bool {
	stepwise := optional.FlatMap(optional.FlatMap(m, f), g)
	composed := optional.FlatMap(m, optional.Compose(f, g))
	return optional.EqualFunc(stepwise, composed, eq)
}

// Idempotence checks that wrapping an Optional once more and flattening it
// through FlatMap gives back the same behaviour under f.
func Idempotence[A, B any](m optional.Optional[A], f func(A) optional.Optional[B], eq func(B, B) bool) bool {
	wrapped := optional.OfNullable(&m)
	flattened := optional.FlatMap(wrapped, func(inner optional.Optional[A]) optional.Optional[B] {
		return optional.FlatMap(inner, f)
	})
	return optional.EqualFunc(flattened, optional.FlatMap(m, f), eq)
}
