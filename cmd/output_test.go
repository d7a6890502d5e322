package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "The Lor...", truncate("The Lord of the Rings", 10))
	assert.Equal(t, "Amélie ...", truncate("Amélie Poulain", 10))
}

func TestYearOrDash(t *testing.T) {
	assert.Equal(t, "1999", yearOrDash("1999-03-30"))
	assert.Equal(t, "-", yearOrDash(""))
	assert.Equal(t, "-", yearOrDash("99"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "result", plural(1, "result", "results"))
	assert.Equal(t, "results", plural(0, "result", "results"))
}

func TestCurrentVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "v1.4.2"
	v, err := currentVersion()
	assert.NoError(t, err)
	assert.Equal(t, "1.4.2", v.String())

	version = "dev"
	_, err = currentVersion()
	assert.Error(t, err)
}
