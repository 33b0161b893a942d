package table

// Flatten turns a mixed variadic argument list into one flat sequence
// of cell values, one entry per logical cell, in source order.
//
// Each argument is flattened one level: a []any contributes one entry
// per element, a typed slice ([]string, []int, []float64, []N, []Cell)
// contributes its elements with their type preserved (so a slice of N
// counts stays a sequence of N values), and anything else passes
// through as a single atomic entry. An untyped nil is a single
// missing-value entry; an empty slice contributes nothing.
func Flatten(args ...any) []any {
	var out []any
	for _, a := range args {
		switch v := a.(type) {
		case []any:
			out = append(out, v...)
		case []string:
			for _, e := range v {
				out = append(out, e)
			}
		case []int:
			for _, e := range v {
				out = append(out, e)
			}
		case []float64:
			for _, e := range v {
				out = append(out, e)
			}
		case []N:
			for _, e := range v {
				out = append(out, e)
			}
		case []Cell:
			for _, e := range v {
				out = append(out, e)
			}
		default:
			out = append(out, a)
		}
	}
	return out
}
