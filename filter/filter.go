// Package filter reads path lists and narrows them down with include and
// exclude glob patterns.
package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/net/html/charset"

	"sshmisc/util"
)

const byteOrderMark = "\ufeff"

// ReadPaths reads one path per line, in whatever encoding the input
// happens to use, and returns them in input order. Blank lines are skipped.
func ReadPaths(reader io.Reader) (*util.List[string], error) {
	contentBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read path list: %w", err)
	}

	encoding, _, _ := charset.DetermineEncoding(contentBytes, "")
	decodedBytes, err := encoding.NewDecoder().Bytes(contentBytes)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_UNDECODABLE_LIST,
			InternalError: fmt.Errorf("failed to decode path list: %w", err),
		}
	}

	content := strings.TrimPrefix(string(decodedBytes), byteOrderMark)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	paths := util.NewList[string]()
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		paths.Add(line)
	}
	return paths, nil
}

type Matcher struct {
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	ignoreCase      bool
}

// Compile builds a Matcher. With ignoreCase the paths are lowercased before
// matching, so patterns are expected in lower case.
func Compile(include []string, exclude []string, ignoreCase bool) (*Matcher, error) {
	matcher := &Matcher{ignoreCase: ignoreCase}

	var err error
	matcher.includePatterns, err = compileGlobs(include)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile include patterns '%v': %w", include, err),
		}
	}
	matcher.excludePatterns, err = compileGlobs(exclude)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile exclude patterns '%v': %w", exclude, err),
		}
	}
	return matcher, nil
}

// expandPatternsIfNeeded lets "*/x" and "**/x" also match x at the top level.
func expandPatternsIfNeeded(patterns []string) []string {
	expanded := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		expanded = append(expanded, pattern)
		if strings.HasPrefix(pattern, "**/") {
			expanded = append(expanded, strings.Replace(pattern, "**/", "", 1))
		} else if strings.HasPrefix(pattern, "*/") {
			expanded = append(expanded, strings.Replace(pattern, "*/", "", 1))
		}
	}
	return expanded
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	patterns = expandPatternsIfNeeded(patterns)
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern '%v': %w", pattern, err)
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(filePath string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(filePath) {
			return true
		}
	}
	return false
}

// Keep reports whether filePath survives the patterns. A path matching an
// include pattern is kept even if an exclude pattern matches it too.
func (matcher *Matcher) Keep(filePath string) bool {
	if matcher.ignoreCase {
		filePath = strings.ToLower(filePath)
	}

	if len(matcher.includePatterns) > 0 {
		return matches(filePath, matcher.includePatterns)
	}
	return !matches(filePath, matcher.excludePatterns)
}

// Apply removes the paths that do not survive the patterns from the list
// and returns how many were removed.
func (matcher *Matcher) Apply(paths *util.List[string]) int {
	removed := 0
	for it := paths.Iterator(); it != nil; {
		next := it.Next()
		if !matcher.Keep(it.Data()) && paths.Remove(it) {
			removed++
		}
		it = next
	}
	return removed
}
