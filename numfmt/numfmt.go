/*
File    : loxmix/numfmt/numfmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package numfmt renders float64s the way the two textual surfaces of
// the interpreter need them: the token/tree printers always show a
// decimal point, while evaluated Values never do for whole numbers.
// Both forms use Go's shortest round-tripping decimal (strconv's
// prec=-1) for the fractional case, so 10.40 still prints as 10.4.
package numfmt

import "strconv"

// WithDecimalPoint renders v the way a number literal token and a tree
// primitive are printed: a trailing ".0" when v has no fractional part,
// otherwise the shortest decimal that parses back to v.
func WithDecimalPoint(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Plain renders v the way an evaluated Value is displayed: no decimal
// point at all for whole numbers, otherwise the shortest decimal.
func Plain(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
