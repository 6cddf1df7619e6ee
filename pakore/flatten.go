package pakore

import "fmt"

// Flatten expands arbitrarily nested argument sequences into a flat token
// list. Strings are atomic, []string and []any are expanded recursively.
// Anything else is rendered with [fmt.Sprint]. Dependency literals and the
// argument lists of [Target.Run] and friends go through Flatten, so build
// scripts can mix single names with precomputed name slices.
func Flatten(args ...any) []string {
	return appendFlat(nil, args)
}

func appendFlat(dst []string, args []any) []string {
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			dst = append(dst, arg)
		case []string:
			dst = append(dst, arg...)
		case []any:
			dst = appendFlat(dst, arg)
		case fmt.Stringer:
			dst = append(dst, arg.String())
		default:
			dst = append(dst, fmt.Sprint(arg))
		}
	}
	return dst
}
