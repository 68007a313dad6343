package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Date)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.3", Commit: "abc", Date: "today", GoVersion: "go1.24", Platform: "linux/amd64"}

	s := info.String()
	assert.True(t, strings.HasPrefix(s, "console version 1.2.3\n"))
	assert.Contains(t, s, "commit: abc")
	assert.Contains(t, s, "platform: linux/amd64")
}
