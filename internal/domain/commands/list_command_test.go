//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autocommit/internal/domain/commands"
	"github.com/rios0rios0/autocommit/internal/domain/entities"
	doubles "github.com/rios0rios0/autocommit/test/infrastructure/repositorydoubles"
)

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the parsed patch list", func(t *testing.T) {
		// given
		stub := &doubles.StubPatchListRepository{List: examplePatchList()}
		cmd := commands.NewListCommand(stub)

		// when
		list, err := cmd.Execute(context.Background(), entities.DefaultSettings(), "drops/pl.txt")

		// then
		require.NoError(t, err)
		assert.Len(t, list.Entries, 3)
		assert.Equal(t, []string{"drops/pl.txt"}, stub.LoadedPaths)
	})

	t.Run("should fall back to the settings patch list path", func(t *testing.T) {
		// given
		stub := &doubles.StubPatchListRepository{List: &entities.PatchList{}}
		cmd := commands.NewListCommand(stub)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), "")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"patch_list.txt"}, stub.LoadedPaths)
	})

	t.Run("should wrap loader errors", func(t *testing.T) {
		// given
		stub := &doubles.StubPatchListRepository{Err: errors.New("boom")}
		cmd := commands.NewListCommand(stub)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), "")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid patch list")
	})
}
