package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func TestFetchCmd_Downloads(t *testing.T) {
	fetch := &stubFetch{path: "input_files/day4.txt", downloaded: true}
	withServices(t, nil, fetch)

	out, err := execute(t, "fetch", "4")
	require.NoError(t, err)

	assert.Equal(t, []int{4}, fetch.calls)
	assert.Contains(t, out, "Fetched input for day 4 to input_files/day4.txt")
}

func TestFetchCmd_Cached(t *testing.T) {
	fetch := &stubFetch{path: "input_files/day4.txt", downloaded: false}
	withServices(t, nil, fetch)

	out, err := execute(t, "fetch", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "already cached")
}

func TestFetchCmd_NoSessionHint(t *testing.T) {
	fetch := &stubFetch{err: domain.ErrNoSession}
	withServices(t, nil, fetch)

	_, err := execute(t, "fetch", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aoc config set session")
}

func TestFetchCmd_All(t *testing.T) {
	fetch := &stubFetch{}
	withServices(t, nil, fetch)

	out, err := execute(t, "fetch")
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 3 inputs")
}
