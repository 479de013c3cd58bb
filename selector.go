package permute

import (
	"regexp"

	"github.com/egdaemon/permute/internal/errorsx"
)

// selectOps filters the subject's declared operations by the declaration's
// tests pattern. The pattern must match an operation's entire name; the empty
// pattern matches everything. An empty result is not an error, the
// declaration simply contributes no cases.
func selectOps(pattern string, ops []Op) ([]Op, error) {
	if pattern == "" {
		pattern = ".*"
	}

	matcher, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, errorsx.Wrapf(err, "invalid tests pattern '%s'", pattern)
	}

	selected := make([]Op, 0, len(ops))
	for _, op := range ops {
		if matcher.MatchString(op.Name) {
			selected = append(selected, op)
		}
	}

	return selected, nil
}
