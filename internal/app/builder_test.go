package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webls/internal/app"
	_ "go.trai.ch/webls/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	// Point the config loader at an empty temporary location so the test
	// never reads the developer's real config.
	tmpDir := t.TempDir()
	t.Setenv("WEBLS_CONFIG", filepath.Join(tmpDir, "config.yaml"))
	t.Setenv("XDG_CACHE_HOME", tmpDir)

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
