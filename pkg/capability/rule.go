package capability

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// iPhone eSIM support by release generation: the X shipped without an
// eSIM; the XS/XR and everything numbered 11 or later shipped with one.
var iphoneGeneration = regexp.MustCompile(`iphone\s*(\d+)`)

// modelCapable applies the release-generation rule to a single model
// string. Strings the rule cannot parse count as capable, a permissive
// default the AND-combination below inherits; tests pin it so any
// policy change is a conscious one.
func modelCapable(model string) bool {
	m := textmatch.Fold(model)
	if m == "" {
		return true
	}

	if strings.Contains(m, "xs") || strings.Contains(m, "xr") {
		return true
	}
	if isIPhoneX(m) {
		return false
	}
	if g := iphoneGeneration.FindStringSubmatch(m); g != nil {
		n, err := strconv.Atoi(g[1])
		if err == nil {
			return n >= 11
		}
	}
	return true
}

// isIPhoneX reports whether the folded model names the original iPhone
// X: the bare "x" token, not XS/XR/Max variants.
func isIPhoneX(folded string) bool {
	idx := strings.Index(folded, "iphone")
	if idx < 0 {
		return false
	}
	rest := strings.Fields(folded[idx+len("iphone"):])
	return len(rest) > 0 && rest[0] == "x"
}

// ruleVerdict AND-combines the rule across every candidate model: the
// set is capable only if each candidate individually is. An ambiguous
// bucket spanning the X and the XS therefore reads as incapable.
func ruleVerdict(models []string) Support {
	if len(models) == 0 {
		return SupportUnknown
	}
	for _, model := range models {
		if !modelCapable(model) {
			return SupportIncapable
		}
	}
	return SupportCapable
}
