package adjacent

import (
	"fmt"
	"strings"
)

const formatIndent = "    "

// String describes p by its source only. The carried value is not part of
// the representation.
func (p *Pairs[T]) String() string {
	return fmt.Sprintf("AdjacentPairs { iterator: %v }", p.source)
}

// Format implements fmt.Formatter. The %v and %s verbs print the compact form
// returned by String. %+v and %#v print one field per line:
//
//	AdjacentPairs {
//	    iterator: Iter([1 2])
//	}
func (p *Pairs[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && (f.Flag('+') || f.Flag('#')):
		src := fmt.Sprintf("%+v", p.source)
		src = strings.ReplaceAll(src, "\n", "\n"+formatIndent)
		fmt.Fprintf(f, "AdjacentPairs {\n%siterator: %s\n}", formatIndent, src)
	case verb == 'v' || verb == 's':
		fmt.Fprint(f, p.String())
	default:
		fmt.Fprintf(f, "%%!%c(adjacent.Pairs=%s)", verb, p.String())
	}
}
