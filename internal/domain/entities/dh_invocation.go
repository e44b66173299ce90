package entities

import (
	"regexp"
	"strings"
)

const withFlag = " --with"

var withArgumentPattern = regexp.MustCompile(`[ \t]--with[ =]([^ \t]+)`)

// DhAddWith adds value to the first --with list of a dh invocation line, or
// appends a new --with flag when there is none.
func DhAddWith(line, value string) string {
	if strings.Contains(line, value) {
		return line
	}
	if !strings.Contains(line, withFlag) {
		return line + withFlag + "=" + value
	}
	pattern := regexp.MustCompile(`([ \t])--with([ =])([^ \t]+)`)
	return replaceFirst(pattern, line, func(groups []string) string {
		return groups[1] + "--with" + groups[2] + value + "," + groups[3]
	})
}

// DhGetWith returns every value passed through --with flags, in order.
func DhGetWith(line string) []string {
	var values []string
	for _, match := range withArgumentPattern.FindAllStringSubmatch(line, -1) {
		values = append(values, strings.Split(match[1], ",")...)
	}
	return values
}

// DhDropWith removes value from the --with list of a dh invocation line.
func DhDropWith(line, value string) string {
	if !strings.Contains(line, value) {
		return line
	}
	escaped := regexp.QuoteMeta(value)

	// only value in the list
	result := replaceFirst(regexp.MustCompile(`[ \t]--with[ =]`+escaped+`( .+|)$`), line,
		func(groups []string) string { return groups[1] })
	// first of the list
	result = replaceFirst(regexp.MustCompile(`([ \t])--with([ =])`+escaped+`,`), result,
		func(groups []string) string { return groups[1] + "--with" + groups[2] })
	// in the middle
	result = replaceFirst(regexp.MustCompile(`([ \t])--with([ =])(.+),`+escaped+`([ ,])`), result,
		func(groups []string) string { return groups[1] + "--with" + groups[2] + groups[3] + groups[4] })
	// last of the list
	result = replaceFirst(regexp.MustCompile(`([ \t])--with([ =])(.+),`+escaped+`$`), result,
		func(groups []string) string { return groups[1] + "--with" + groups[2] + groups[3] })

	return result
}

// DhDropArgument removes a whitespace-delimited argument from the line.
func DhDropArgument(line, argument string) string {
	if !strings.Contains(line, argument) {
		return line
	}
	escaped := regexp.QuoteMeta(argument)

	result := replaceFirst(regexp.MustCompile(`[ \t]+`+escaped+`$`), line,
		func([]string) string { return "" })
	result = replaceFirst(regexp.MustCompile(`([ \t])`+escaped+`[ \t]`), result,
		func(groups []string) string { return groups[1] })

	return result
}

// DhReplaceArgument swaps a whitespace-delimited argument for another one.
func DhReplaceArgument(line, old, replacement string) string {
	if !strings.Contains(line, old) {
		return line
	}
	escaped := regexp.QuoteMeta(old)

	result := replaceFirst(regexp.MustCompile(`([ \t])`+escaped+`$`), line,
		func(groups []string) string { return groups[1] + replacement })
	result = replaceFirst(regexp.MustCompile(`([ \t])`+escaped+`([ \t])`), result,
		func(groups []string) string { return groups[1] + replacement + groups[2] })

	return result
}

// replaceFirst substitutes the leftmost match of pattern with the text built
// from its submatches. Unlike ReplaceAllString no "$" expansion happens.
func replaceFirst(pattern *regexp.Regexp, s string, build func(groups []string) string) string {
	loc := pattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return s[:loc[0]] + build(groups) + s[loc[1]:]
}
