package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	content := []byte("╭─────╮\n│  ★  │\n╰─────╯\n")

	assert.Empty(t, Unified(content, content, "golden", "rendered"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := Unified(expected, actual, "golden", "rendered")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "-line2\n")
	assert.Contains(t, result, "+modified\n")
	assert.Contains(t, result, " line1\n")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
}

func TestUnifiedWholeLines(t *testing.T) {
	expected := []byte("│  ★  │\n")
	actual := []byte("│  +  │\n")

	result := Unified(expected, actual, "a", "b")

	assert.Contains(t, result, "-│  ★  │\n")
	assert.Contains(t, result, "+│  +  │\n")
}

func TestUnifiedLabels(t *testing.T) {
	result := Unified([]byte("a\n"), []byte("b\n"), "testdata/toast.golden", "rendered")

	lines := strings.Split(result, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "--- testdata/toast.golden", lines[0])
	assert.Equal(t, "+++ rendered", lines[1])
}

func TestUnifiedEmptyExpected(t *testing.T) {
	result := Unified(nil, []byte("new\n"), "golden", "rendered")

	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+new\n")
}

func TestUnifiedTruncation(t *testing.T) {
	var expected, actual strings.Builder
	for i := 0; i < 6000; i++ {
		expected.WriteString("old line\n")
		actual.WriteString("new line\n")
	}

	result := Unified([]byte(expected.String()), []byte(actual.String()), "golden", "rendered")

	assert.Contains(t, result, "truncated")
	assert.LessOrEqual(t, len(strings.Split(result, "\n")), maxDiffLines+2)
}
