package fixture

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notetree/internal/adapters/cache"
	"notetree/internal/adapters/hoist"
	"notetree/internal/adapters/sqlite"
	"notetree/internal/application/tree"
	"notetree/internal/domain"
)

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing id",
			input:   "notes:\n  - title: x\n    type: text\n",
			wantErr: "id is required",
		},
		{
			name:    "missing type",
			input:   "notes:\n  - id: a\n",
			wantErr: "type is required",
		},
		{
			name:    "duplicate",
			input:   "notes:\n  - id: a\n    type: text\n  - id: a\n    type: book\n",
			wantErr: "duplicate id",
		},
		{
			name:    "unknown field",
			input:   "notes:\n  - id: a\n    type: text\n    colour: red\n",
			wantErr: "colour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDocument_NoteSet(t *testing.T) {
	doc, err := ParseFile(filepath.Join("testdata", "notes.yaml"))
	require.NoError(t, err)

	set := doc.NoteSet()
	assert.Len(t, set.Notes, 7)

	branches := make(map[string]*domain.Branch)
	for _, b := range set.Branches {
		branches[b.ID] = b
	}

	require.Contains(t, branches, domain.RootBranchID)
	assert.Equal(t, domain.NoParentNoteID, branches[domain.RootBranchID].ParentNoteID)

	require.Contains(t, branches, "root_projects")
	assert.Equal(t, "Draft", branches["root_projects"].Prefix)
	assert.True(t, branches["root_projects"].IsExpanded)
	assert.Equal(t, 20, branches["root_projects"].Position)

	require.Contains(t, branches, "projects_day1_clone")
	assert.Equal(t, "day1", branches["projects_day1_clone"].NoteID)
}

// TestSeed_BuildsTree runs the fixture through the sqlite store, cache and builder
func TestSeed_BuildsTree(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	defer store.Close()

	doc, err := ParseFile(filepath.Join("testdata", "notes.yaml"))
	require.NoError(t, err)
	_, err = Seed(ctx, store, doc)
	require.NoError(t, err)

	noteCache := cache.New(store)
	require.NoError(t, noteCache.Load(ctx))
	hoisted := hoist.New(store, "")
	require.NoError(t, hoisted.Load(ctx))

	builder := tree.NewBuilder(tree.ViewContext{Cache: noteCache, Hoist: hoisted})

	root, err := builder.PrepareRootNode(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.IconRoot, root.Icon)
	assert.True(t, root.Expanded)
	require.Len(t, root.Children, 2)

	journal, projects := root.Children[0], root.Children[1]
	assert.Equal(t, "Journal", journal.Title)
	assert.True(t, journal.Lazy)
	assert.Nil(t, journal.Children)

	assert.Equal(t, "Draft - Plan", projects.Title)
	assert.Equal(t, "highlight type-text mime-text-html", projects.ExtraClasses)

	var ids []string
	for _, c := range projects.Children {
		ids = append(ids, c.NoteID)
	}
	assert.Equal(t, []string{"design", "saved", "day1"}, ids, "embedded diagram is hidden")

	design := projects.Children[0]
	assert.Equal(t, "Design &lt;v2&gt;", design.Title)
	assert.Equal(t, "protected type-code mime-application-javascript", design.ExtraClasses)
	assert.Equal(t, "bx bx-code", design.Icon)

	saved := projects.Children[1]
	assert.Equal(t, "bx bx-task", saved.Icon)
	assert.True(t, saved.Folder)
	assert.True(t, saved.Lazy)

	day1 := projects.Children[2]
	assert.Contains(t, day1.ExtraClasses, domain.ClassMultipleParents)

	t.Run("lazy expansion", func(t *testing.T) {
		note, err := noteCache.GetNote(ctx, "journal")
		require.NoError(t, err)
		children, err := builder.PrepareBranch(ctx, note)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, "day1", children[0].NoteID)
	})

	t.Run("hoisted", func(t *testing.T) {
		require.NoError(t, hoisted.Hoist(ctx, "day1"))
		defer hoisted.Unhoist(ctx)

		node, err := builder.PrepareRootNode(ctx)
		require.NoError(t, err)
		assert.Equal(t, "journal_day1", node.BranchID)
		assert.Equal(t, domain.IconHoisted, node.Icon)
		assert.True(t, node.Expanded)
		assert.False(t, node.Folder)
	})
}

func TestSeed_SetsHoistedOption(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	defer store.Close()

	doc, err := Parse(strings.NewReader("hoisted: a\nnotes:\n  - id: a\n    type: text\n"))
	require.NoError(t, err)
	_, err = Seed(ctx, store, doc)
	require.NoError(t, err)

	value, err := store.GetOption(ctx, hoist.OptionName)
	require.NoError(t, err)
	assert.Equal(t, "a", value)
}
