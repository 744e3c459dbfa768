package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

func TestFeaturedCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("featured")

	require.NoError(t, err)
	assert.Contains(t, out, "Featured packages:")
	assert.Contains(t, out, "Cancún All Inclusive")
}

func TestFeaturedCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("featured", "--json")

	require.NoError(t, err)
	var packages []domain.TravelPackage
	require.NoError(t, json.Unmarshal([]byte(out), &packages))
	require.NotEmpty(t, packages)
	for _, pkg := range packages {
		assert.True(t, pkg.Featured, "package %q", pkg.ID)
	}
}
