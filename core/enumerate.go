// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// enumerate implements the two-phase query protocol shared by every
// plural query. A nil dst asks for the total count only. A non-nil
// dst (a zero-length slice included) is filled with up to len(dst)
// elements in src order; the returned count is the number written and
// the Result is Incomplete when dst was too small for the whole set.
func enumerate[T any](dst, src []T) (int, Result) {
	if dst == nil {
		return len(src), Success
	}
	n := copy(dst, src)
	if len(dst) < len(src) {
		return n, Incomplete
	}
	return n, Success
}
