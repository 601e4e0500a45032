package query_matcher

import (
	"errors"
	"fmt"
	"strings"
)

// Wildcard stands for any run of non-whitespace characters.
const Wildcard = `\S*`

var ErrInvalidPattern = errors.New("invalid pattern")

// ParsePattern splits pattern around its single wildcard.
func ParsePattern(pattern string) (prefix string, suffix string, err error) {
	parts := strings.Split(pattern, Wildcard)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q must contain exactly one %s", ErrInvalidPattern, pattern, Wildcard)
	}
	return parts[0], parts[1], nil
}
