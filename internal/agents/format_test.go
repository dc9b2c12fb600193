package agents

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	var lines []string
	for i := 1; i <= 14; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	text := strings.Join(lines, "\n")

	got := strings.Split(Truncate(text, 10), "\n")
	require.Len(t, got, 11)
	assert.Equal(t, lines[:10], got[:10])
	assert.Equal(t, TruncationNotice, got[10])

	short := strings.Join(lines[:10], "\n")
	assert.Equal(t, short, Truncate(short, 10))
	assert.Equal(t, text, Truncate(text, 0))
}

func TestWantsDetails(t *testing.T) {
	assert.True(t, WantsDetails("show me the full details"))
	assert.True(t, WantsDetails("Complete list please"))
	assert.False(t, WantsDetails("show open tickets"))
	assert.True(t, WantsDetails("tell me everything", "everything"))
	assert.False(t, WantsDetails("tell me everything"))
}

func TestLabelTitle(t *testing.T) {
	assert.Equal(t, "For 100Gb", labelTitle("for 100gb"))
	assert.Equal(t, "Per Gb Month", labelTitle("per gb month"))
	assert.Equal(t, "Per Hour", priceLabel("price_per_hour"))
	assert.Equal(t, "For 1Tb", priceLabel("price_for_1tb"))
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "In Progress", titleWords("in PROGRESS"))
	assert.Equal(t, "Open", titleWords("open"))
}
