// Package match implements the wildcard and regular expression matching
// used to select dependencies by coordinate.
package match

import (
	"regexp"
	"unicode"
)

// Match reports whether candidate matches pattern in full.
//
// A pattern starting with '^' is a regular expression. Any other pattern is
// a glob where '*' matches zero or more characters and '?' exactly one.
func Match(pattern, candidate string, ignoreCase bool) bool {
	if pattern == "" {
		return false
	}
	if pattern[0] == '^' {
		return matchRegexp(pattern, candidate, ignoreCase)
	}
	return matchGlob([]rune(pattern), []rune(candidate), ignoreCase)
}

// MatchDefault is Match with case folding enabled.
func MatchDefault(pattern, candidate string) bool {
	return Match(pattern, candidate, true)
}

// MatchAny reports whether any of patterns matches candidate, ignoring case.
func MatchAny(patterns []string, candidate string) bool {
	for _, p := range patterns {
		if Match(p, candidate, true) {
			return true
		}
	}
	return false
}

func matchRegexp(pattern, candidate string, ignoreCase bool) bool {
	expr := "^(?:" + pattern + ")$"
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false
	}
	return re.MatchString(candidate)
}

func matchGlob(pat, str []rune, ignoreCase bool) bool {
	patStart, patEnd := 0, len(pat)-1
	strStart, strEnd := 0, len(str)-1

	if !containsStar(pat) {
		if patEnd != strEnd {
			return false
		}
		for i := 0; i <= patEnd; i++ {
			if !charMatch(pat[i], str[i], ignoreCase) {
				return false
			}
		}
		return true
	}

	if patEnd == 0 {
		return true
	}

	// literal prefix up to the first star
	for pat[patStart] != '*' && strStart <= strEnd {
		if !charMatch(pat[patStart], str[strStart], ignoreCase) {
			return false
		}
		patStart++
		strStart++
	}
	if strStart > strEnd {
		return onlyStars(pat[patStart : patEnd+1])
	}

	// literal suffix after the last star
	for pat[patEnd] != '*' && strStart <= strEnd {
		if !charMatch(pat[patEnd], str[strEnd], ignoreCase) {
			return false
		}
		patEnd--
		strEnd--
	}
	if strStart > strEnd {
		return onlyStars(pat[patStart : patEnd+1])
	}

	// pat[patStart] and pat[patEnd] are both stars here; place every
	// segment between them at its leftmost position.
	for patStart != patEnd && strStart <= strEnd {
		next := -1
		for i := patStart + 1; i <= patEnd; i++ {
			if pat[i] == '*' {
				next = i
				break
			}
		}
		if next == patStart+1 {
			patStart++
			continue
		}

		segLen := next - patStart - 1
		strLen := strEnd - strStart + 1
		found := -1
	search:
		for i := 0; i <= strLen-segLen; i++ {
			for j := 0; j < segLen; j++ {
				if !charMatch(pat[patStart+j+1], str[strStart+i+j], ignoreCase) {
					continue search
				}
			}
			found = strStart + i
			break
		}
		if found == -1 {
			return false
		}

		patStart = next
		strStart = found + segLen
	}

	return onlyStars(pat[patStart : patEnd+1])
}

func containsStar(pat []rune) bool {
	for _, c := range pat {
		if c == '*' {
			return true
		}
	}
	return false
}

func onlyStars(pat []rune) bool {
	for _, c := range pat {
		if c != '*' {
			return false
		}
	}
	return true
}

func charMatch(p, s rune, ignoreCase bool) bool {
	if p == '?' || p == s {
		return true
	}
	if !ignoreCase {
		return false
	}
	return unicode.ToUpper(p) == unicode.ToUpper(s) || unicode.ToLower(p) == unicode.ToLower(s)
}
