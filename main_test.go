package main

import (
	"regexp"
	"testing"

	"github.com/launchdarkly/go-test-mixins/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathPatternMatchesTestAndParents(t *testing.T) {
	rx := regexp.MustCompile(pathPattern([]string{"temp directories", "made no files (x)"}))
	assert.True(t, rx.MatchString("temp directories"))
	assert.True(t, rx.MatchString("temp directories/made no files (x)"))
	assert.False(t, rx.MatchString("temp directories/all skipped"))
	assert.False(t, rx.MatchString("modules"))
}

func TestPathPatternWorksAsFilter(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set(pathPattern([]string{"a", "b"})))
	var ran []string
	framework.Run(filters.AsFilter, nil, func(c *framework.Context) {
		for _, parent := range []string{"a", "z"} {
			c.Run(parent, func(c *framework.Context) {
				for _, child := range []string{"b", "c"} {
					c.Run(child, func(c *framework.Context) { ran = append(ran, c.Name()) })
				}
			})
		}
	})
	assert.Equal(t, []string{"a/b"}, ran)
}

func TestReadParams(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog", "-run", "^env", "-skip", "streams", "-keep-temp-dirs", "-debug"}))
	assert.True(t, p.filters.MustMatch.IsDefined())
	assert.True(t, p.filters.MustNotMatch.IsDefined())
	assert.True(t, p.keepTempDirs)
	assert.True(t, p.debug)
	assert.False(t, p.debugAll)
	assert.False(t, p.noColor)
}

func TestReadParamsRejectsExtraArguments(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{"prog", "extra"}))
}

func TestCommandBuilderQuotes(t *testing.T) {
	var b commandBuilder
	b.add("prog", "-run", "^a b$")
	assert.Equal(t, `prog -run '^a b$'`, b.String())
}
