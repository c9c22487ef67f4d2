package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitVersion(t *testing.T) {
	withRevision := func(rev string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: rev}}}, true
		}
	}
	noInfo := func() (*debug.BuildInfo, bool) { return nil, false }

	assert.Equal(t, "1.4.0", initVersion("1.4.0", withRevision("0123456789abcdef")))
	assert.Equal(t, "01234567", initVersion("", withRevision("0123456789abcdef")))
	assert.Equal(t, "abc", initVersion("", withRevision("abc")))
	assert.Equal(t, "unknown", initVersion("", withRevision("")))
	assert.Equal(t, "unknown", initVersion("", noInfo))
}

func TestFull(t *testing.T) {
	assert.Equal(t, "agent-tracker/"+Version, Full())
}
