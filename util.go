package inspector

import (
	"fmt"
	"regexp"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// returns names of all variables
func getAllVars(data string) []string {
	values := []string{}
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// checkUnknown returns an error naming the variables of template
// that are not part of allowed
func checkUnknown(template string, allowed ...string) error {
	var unknown []string
	for _, v := range getAllVars(template) {
		if !sliceutil.Contains(allowed, v) {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown variables `%v`", strings.Join(unknown, ","))
	}
	return nil
}

// comparison returns the operator shown between two differing counts
func comparison(sc, tc int) string {
	if sc > tc {
		return ">"
	}
	return "<"
}
