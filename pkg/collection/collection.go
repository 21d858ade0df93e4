// Package collection provides generic slice helpers.
//
//	dtos := collection.Map(menus, resources.MenuFrom)
//	if collection.Contains(claims.Roles, func(r string) bool { return r == "admin" }) { ... }
package collection

// Map transforms each element of s using fn. A nil s gives an empty,
// non-nil slice so it encodes as [] rather than null.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Contains reports whether any element satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	for _, v := range s {
		if fn(v) {
			return true
		}
	}
	return false
}
