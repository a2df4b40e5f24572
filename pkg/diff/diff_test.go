package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	content := []byte("final price 1445.99\n")
	assert.Empty(t, Unified(content, content, "before", "after"))
}

func TestUnifiedShowsChangedLines(t *testing.T) {
	before := []byte("multiplier x1.00\nfinal price 1000.00\n")
	after := []byte("multiplier x1.40\nfinal price 1445.99\n")

	out := Unified(before, after, "scenario A", "scenario B")
	require.NotEmpty(t, out)

	assert.Contains(t, out, "--- scenario A")
	assert.Contains(t, out, "+++ scenario B")
	assert.Contains(t, out, "-multiplier x1.00")
	assert.Contains(t, out, "+multiplier x1.40")
}

func TestUnifiedKeepsUnchangedContext(t *testing.T) {
	before := []byte("base price 1000.00\nlabor 3.0h\n")
	after := []byte("base price 1000.00\nlabor 4.5h\n")

	out := Unified(before, after, "before", "after")
	assert.Contains(t, out, " base price 1000.00")
}

func TestUnifiedTruncatesHugeDiffs(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < 3000; i++ {
		before.WriteString("row kept\n")
		after.WriteString("row changed\n")
	}

	out := Unified([]byte(before.String()), []byte(after.String()), "before", "after")
	assert.Contains(t, out, truncateMessage)
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), maxDiffLines+3)
}
