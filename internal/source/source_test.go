package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpasecinic/spindle/internal/source"
)

func TestCallerReportsTestFrame(t *testing.T) {
	t.Parallel()

	got := source.Caller().Capture()
	require.NotEqual(t, source.Unknown, got)
	assert.True(t, strings.HasPrefix(got, "source_test.go:"), "captured %q", got)
}

func TestCallerThroughHelper(t *testing.T) {
	t.Parallel()

	capture := func() string {
		return source.Caller().Capture()
	}

	got := capture()
	assert.True(t, strings.HasPrefix(got, "source_test.go:"), "captured %q", got)
}

func TestCallerIndependentTrackers(t *testing.T) {
	t.Parallel()

	first := source.Caller().Capture()
	second := source.Caller().Capture()
	require.NotEqual(t, source.Unknown, first)
	require.NotEqual(t, source.Unknown, second)
	assert.NotEqual(t, first, second, "distinct call sites should capture distinct lines")
}

func TestFixed(t *testing.T) {
	t.Parallel()

	tr := source.Fixed("module the.Module")
	assert.Equal(t, "module the.Module", tr.Capture())
	assert.Equal(t, "module the.Module", tr.Capture())
}

func TestFixedEmptyValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", source.Fixed("").Capture())
}
