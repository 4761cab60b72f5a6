package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a compiled route pattern with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, pre-compiled at init.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/news/\d+$`), template: "/news/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying IDs (e.g. /news/123) collapse to a
// template (/news/:id); static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/news/123")    // "/news/:id"
//	NormalizePath("/news")        // "/news" (unchanged)
//	NormalizePath("/health")      // "/health" (unchanged)
//	NormalizePath("/news/123/")   // "/news/:id"
//	NormalizePath("/news?page=2") // "/news"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
