package permute

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DefaultTemplate renders the combination's per-dimension index list.
const DefaultTemplate = "{list}"

var positional = regexp.MustCompile(`\{(\d+)\}`)

// renderer prints combination values deterministically: map keys sorted, no
// pointer addresses or capacities leaking into case names.
var renderer = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// CaseName renders a display name for a combination. {list} expands to the
// per-dimension index list and {index} to the combination's ordinal; both are
// substituted literally before the pattern based positional pass so that pass
// never misreads the aggregate markers. {k} expands to the combination's k-th
// value (0 based); out of range positions render verbatim. Names are purely
// cosmetic and never influence selection or binding.
func CaseName(template string, c Combination) string {
	if template == "" {
		template = DefaultTemplate
	}

	s := strings.ReplaceAll(template, "{list}", fmt.Sprintf("%v", c.Indices))
	s = strings.ReplaceAll(s, "{index}", strconv.Itoa(c.Pos))

	return positional.ReplaceAllStringFunc(s, func(m string) string {
		k, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || k >= len(c.Values) {
			return m
		}

		return renderer.Sprintf("%v", c.Values[k])
	})
}
