package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates project config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{
			Global: false,
			Config: domain.NewDefaultConfig(),
		})

		require.NoError(t, err)
		assert.Equal(t, "/work/.quadrant.toml", out.Path)
		assert.True(t, manager.InitProjectCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{
			Global: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/quadrant/config.toml", out.Path)
		assert.False(t, manager.InitProjectCalled)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("returns error when project config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.ProjectConfigInfo.Exists = true
		manager.InitProjectErr = domain.ErrConfigExists

		uc := usecase.NewInitConfig(manager)
		_, err := uc.Execute(context.Background(), usecase.InitConfigInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error when global config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo.Exists = true
		manager.InitGlobalErr = domain.ErrConfigExists

		uc := usecase.NewInitConfig(manager)
		_, err := uc.Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
