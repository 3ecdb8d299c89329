package envutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MYSTORE_TEST_STR", "  value ")
	assert.Equal(t, "value", GetEnv("MYSTORE_TEST_STR", "def", nil))
	assert.Equal(t, "def", GetEnv("MYSTORE_TEST_MISSING", "def", nil))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("MYSTORE_TEST_INT", "12")
	assert.Equal(t, 12, GetEnvAsInt("MYSTORE_TEST_INT", 3, nil))
	t.Setenv("MYSTORE_TEST_INT", "twelve")
	assert.Equal(t, 3, GetEnvAsInt("MYSTORE_TEST_INT", 3, nil))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("MYSTORE_TEST_DUR", "30m")
	assert.Equal(t, 30*time.Minute, GetEnvAsDuration("MYSTORE_TEST_DUR", time.Second, nil))
	t.Setenv("MYSTORE_TEST_DUR", "7")
	assert.Equal(t, 7*time.Second, GetEnvAsDuration("MYSTORE_TEST_DUR", time.Second, nil))
	t.Setenv("MYSTORE_TEST_DUR", "soon")
	assert.Equal(t, time.Second, GetEnvAsDuration("MYSTORE_TEST_DUR", time.Second, nil))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("MYSTORE_TEST_BOOL", "off")
	assert.False(t, GetEnvAsBool("MYSTORE_TEST_BOOL", true, nil))
	t.Setenv("MYSTORE_TEST_BOOL", "maybe")
	assert.True(t, GetEnvAsBool("MYSTORE_TEST_BOOL", true, nil))
}
