package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")

	assert.Equal(t, NotAvailable, info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "today", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123\n", info.String())
}
