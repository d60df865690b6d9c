package sheets

import (
	"regexp"
	"strings"
)

var sheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// ParseSheetID accepts either a full spreadsheet URL or a bare id and
// returns the id.
func ParseSheetID(ref string) string {
	ref = strings.TrimSpace(ref)
	if m := sheetURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ref
}
