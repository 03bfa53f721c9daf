package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommand_PrimaryProvider(t *testing.T) {
	up := newFakeUpstreams(t)
	cfg := up.writeConfig(t, "test-key")

	stdout, _, err := executeCommand(t, "--config", cfg, "catalog")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Provider: TMDB")
	assert.Contains(t, stdout, "Featured: Dune")
	assert.Contains(t, stdout, "Released: 2021-10-22")
	assert.Contains(t, stdout, "Popular on Streamix")
	assert.Contains(t, stdout, "Trending Now")
	assert.Contains(t, stdout, "Heat")
	assert.Contains(t, stdout, "Action Movies")
	assert.NotContains(t, stdout, "Speed", "items without a poster are not listed")
	assert.Contains(t, stdout, "* 7.8", "buffers get the ASCII rating glyph")
	assert.EqualValues(t, 3, up.tmdbRequests.Load())
}

func TestCatalogCommand_NoCredentialUsesFallback(t *testing.T) {
	up := newFakeUpstreams(t)
	cfg := up.writeConfig(t, "your_tmdb_api_key_here")

	stdout, _, err := executeCommand(t, "--config", cfg, "catalog")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Provider: TVMaze")
	assert.Contains(t, stdout, "Featured: Under the Dome")
	assert.Contains(t, stdout, "A dome.")
	assert.EqualValues(t, 0, up.tmdbRequests.Load(), "no primary request without a credential")
}

func TestCatalogCommand_PrimaryFailureFallsBack(t *testing.T) {
	up := newFakeUpstreams(t)
	up.tmdbStatus = http.StatusUnauthorized
	cfg := up.writeConfig(t, "bad-key")

	stdout, stderr, err := executeCommand(t, "--config", cfg, "catalog")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Provider: TVMaze")
	assert.Contains(t, stderr, "primary provider failed, falling back")
	assert.NotContains(t, stderr, "bad-key", "the API key never reaches the logs")
}

func TestCatalogCommand_JSON(t *testing.T) {
	up := newFakeUpstreams(t)
	cfg := up.writeConfig(t, "")

	stdout, _, err := executeCommand(t, "--config", cfg, "catalog", "--json")
	require.NoError(t, err)

	var payload catalogJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "tvmaze", payload.Provider)
	require.NotNil(t, payload.Featured)
	assert.Equal(t, "https://static.test/m/1.jpg", payload.Featured.PosterURL)
	require.Len(t, payload.Rows, 3)
	assert.Equal(t, "Popular on Streamix", payload.Rows[0].Title)
	require.Len(t, payload.Rows[0].Items, 1)
	require.NotNil(t, payload.Rows[0].Items[0].Rating)
	assert.InDelta(t, 6.5, *payload.Rows[0].Items[0].Rating, 0.001)
	assert.Empty(t, payload.Rows[1].Items)
}

func TestCatalogCommand_MissingConfigFile(t *testing.T) {
	_, _, err := executeCommand(t, "--config", "/nonexistent/streamix.yaml", "catalog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to start: loading configuration")
	assert.Contains(t, err.Error(), "Suggestion:")
}
