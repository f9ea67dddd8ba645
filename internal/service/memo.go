package service

import (
	"regexp"
	"strings"
)

// memoPattern matches the donation form's memo layout: an optional
// "Company name:" line followed by an optional "Note:" line. Both groups
// are optional, so the pattern matches any memo; an unlabeled memo yields
// an empty comment and no company rather than falling through as raw text.
var memoPattern = regexp.MustCompile(`^(Company name:(?P<company>.*))?\n*(Note:(?P<comment>.*))?`)

var (
	memoCompanyIdx = memoPattern.SubexpIndex("company")
	memoCommentIdx = memoPattern.SubexpIndex("comment")
)

// parseMemo extracts the structured (comment, company) pair from a memo.
// Company is nil when the label is absent or empty.
func parseMemo(memo string) (comment string, company *string) {
	match := memoPattern.FindStringSubmatch(memo)
	if match == nil {
		return memo, nil
	}

	comment = strings.TrimSpace(match[memoCommentIdx])
	if c := strings.TrimSpace(match[memoCompanyIdx]); c != "" {
		company = &c
	}
	return comment, company
}
