package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BUILDLEDGER_TEST_KEY", "set-value")

	assert.Equal(t, "set-value", GetEnv("BUILDLEDGER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BUILDLEDGER_MISSING_KEY", "fallback"))
}

func TestAddr(t *testing.T) {
	t.Setenv("PORT", "9090")
	assert.Equal(t, ":9090", Addr())
}
