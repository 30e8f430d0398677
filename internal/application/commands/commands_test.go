package commands

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notetree/internal/adapters/cache"
	"notetree/internal/adapters/fixture"
	"notetree/internal/adapters/hoist"
	"notetree/internal/adapters/sqlite"
	"notetree/internal/application"
	"notetree/internal/application/tree"
	"notetree/internal/domain"
)

const testTree = `
notes:
  - id: root
    title: root
    type: text
    children:
      - note: inbox
      - note: archive
  - id: inbox
    title: Inbox
    type: text
    relations:
      - name: imageLink
        value: photo
    children:
      - note: task
      - note: photo
  - id: task
    title: Task
    type: text
  - id: photo
    title: Photo
    type: image
    mime: image/jpeg
  - id: archive
    title: Archive
    type: book
    labels:
      - name: archived
    children:
      - note: old
  - id: old
    title: Old
    type: text
    children:
      - note: task
        branch: old_task_clone
  - id: floating
    title: Floating
    type: text
`

type testEnv struct {
	cache   *cache.Cache
	hoist   *hoist.State
	builder *tree.Builder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	doc, err := fixture.Parse(strings.NewReader(testTree))
	require.NoError(t, err)
	_, err = fixture.Seed(ctx, store, doc)
	require.NoError(t, err)

	env := &testEnv{
		cache: cache.New(store),
		hoist: hoist.New(store, ""),
	}
	require.NoError(t, env.cache.Load(ctx))
	env.builder = tree.NewBuilder(tree.ViewContext{Cache: env.cache, Hoist: env.hoist})
	return env
}

func flatIDs(root *domain.DisplayNode) []string {
	var ids []string
	for _, flat := range root.Flatten() {
		ids = append(ids, flat.Node.NoteID)
	}
	return ids
}

func TestBuildRootCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		depth int
		want  []string
	}{
		{name: "stored expansion", depth: 0, want: []string{"root", "inbox", "archive"}},
		{name: "one level", depth: 1, want: []string{"root", "inbox", "archive"}},
		{name: "two levels", depth: 2, want: []string{"root", "inbox", "task", "archive", "old"}},
		{name: "everything", depth: 10, want: []string{"root", "inbox", "task", "archive", "old", "task"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := NewBuildRootCommand(env.cache, env.builder, tt.depth).Execute(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, flatIDs(root))
		})
	}

	t.Run("negative depth", func(t *testing.T) {
		_, err := NewBuildRootCommand(env.cache, env.builder, -1).Execute(ctx)
		var validationErr *application.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "depth", validationErr.Field)
	})
}

func TestExpandNoteCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	children, err := NewExpandNoteCommand(env.cache, env.builder, "inbox").Execute(ctx)
	require.NoError(t, err)
	require.Len(t, children, 1, "the embedded photo stays hidden")
	assert.Equal(t, "task", children[0].NoteID)
	assert.Equal(t, "inbox_task", children[0].BranchID)
	assert.Contains(t, children[0].ExtraClasses, domain.ClassMultipleParents)

	leaf, err := NewExpandNoteCommand(env.cache, env.builder, "task").Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, leaf)

	_, err = NewExpandNoteCommand(env.cache, env.builder, "ghost").Execute(ctx)
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = NewExpandNoteCommand(env.cache, env.builder, " ").Execute(ctx)
	assert.Error(t, err)
}

func TestInspectNoteCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := NewInspectNoteCommand(env.cache, env.builder, "inbox").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Inbox", result.Title)
	assert.Equal(t, domain.KindNormal.String(), result.Kind)
	assert.Equal(t, domain.IconFolder, result.Icon)
	assert.Equal(t, "type-text", result.ExtraClasses)
	assert.Equal(t, []string{"root"}, result.ParentNoteIDs)
	assert.Equal(t, []string{"task"}, result.VisibleChildIDs)
	assert.Equal(t, []string{"photo"}, result.HiddenChildIDs)

	archive, err := NewInspectNoteCommand(env.cache, env.builder, "archive").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bx bx-book", archive.Icon)
	assert.Equal(t, "type-book archived", archive.ExtraClasses)

	leaf, err := NewInspectNoteCommand(env.cache, env.builder, "task").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.IconNote, leaf.Icon)
	assert.NotNil(t, leaf.VisibleChildIDs)
	assert.Empty(t, leaf.VisibleChildIDs)
}

func TestHoistNoteCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := NewHoistNoteCommand(env.cache, env.hoist, "archive", false).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "archive", result.NoteID)
	assert.Equal(t, "archive", env.hoist.HoistedNoteID())

	root, err := NewBuildRootCommand(env.cache, env.builder, 0).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "root_archive", root.BranchID)
	assert.Equal(t, domain.IconHoisted, root.Icon)
	assert.True(t, root.Expanded)
	assert.Equal(t, []string{"archive", "old"}, flatIDs(root))

	_, err = NewHoistNoteCommand(env.cache, env.hoist, "floating", false).Execute(ctx)
	assert.ErrorIs(t, err, application.ErrMissingBranch)
	assert.Equal(t, "archive", env.hoist.HoistedNoteID(), "failed hoist keeps the previous note")

	_, err = NewHoistNoteCommand(env.cache, env.hoist, "ghost", false).Execute(ctx)
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = NewHoistNoteCommand(env.cache, env.hoist, "task", true).Execute(ctx)
	assert.Error(t, err, "note ID and clear are exclusive")

	result, err = NewHoistNoteCommand(env.cache, env.hoist, "", true).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RootNoteID, result.NoteID)
	assert.Equal(t, domain.RootNoteID, env.hoist.HoistedNoteID())
}
