package prompt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-relay/internal/core"
)

func newTestBuilder(t *testing.T, variant Variant) *Builder {
	t.Helper()
	pm, err := NewManager()
	require.NoError(t, err)
	return NewBuilder(pm, variant)
}

func TestBuildPrompt(t *testing.T) {
	b := newTestBuilder(t, DefaultVariant)

	oldFiles := []core.FileContent{
		{Filename: "main.go", Content: "package main\n"},
		{Filename: "util/strings.go", Content: "package util\n"},
	}
	diffs := []core.CodeDiff{
		{Filename: "main.go", Patch: "@@ -1 +1,2 @@\n package main\n+// hi", Status: core.DiffModified},
		{Filename: "new.go", Patch: "@@ -0,0 +1 @@\n+package main", Status: core.DiffAdded},
	}

	messages, err := b.BuildPrompt(oldFiles, diffs)
	require.NoError(t, err)
	require.Len(t, messages, 4)

	assert.Equal(t, core.RoleSystem, messages[0].Role)
	assert.Equal(t, core.RoleUser, messages[1].Role)
	assert.Contains(t, messages[1].Content, "`main.go`")
	assert.Contains(t, messages[2].Content, "`util/strings.go`")
	assert.Contains(t, messages[3].Content, "+// hi")
	assert.Contains(t, messages[3].Content, "+package main")

	again, err := b.BuildPrompt(oldFiles, diffs)
	require.NoError(t, err)
	if diff := cmp.Diff(messages, again); diff != "" {
		t.Errorf("BuildPrompt is not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildPrompt_ChangesNameEachFile(t *testing.T) {
	b := newTestBuilder(t, DefaultVariant)

	diffs := []core.CodeDiff{
		{Filename: "cmd/app/main.go", Patch: "+a", Status: core.DiffModified},
		{Filename: "docs/new.md", Patch: "+b", Status: core.DiffAdded},
		{Filename: "legacy.go", Patch: "-c", Status: core.DiffRemoved},
	}

	messages, err := b.BuildPrompt(nil, diffs)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	changes := messages[1].Content
	for _, d := range diffs {
		assert.Contains(t, changes, "`"+d.Filename+"` ("+string(d.Status)+")")
	}
	assert.Less(t, strings.Index(changes, "cmd/app/main.go"), strings.Index(changes, "+a"))
	assert.Less(t, strings.Index(changes, "docs/new.md"), strings.Index(changes, "+b"))
}

func TestBuildPrompt_NoOldFiles(t *testing.T) {
	b := newTestBuilder(t, DefaultVariant)

	messages, err := b.BuildPrompt(nil, []core.CodeDiff{{Filename: "a.go", Patch: "+x"}})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, core.RoleSystem, messages[0].Role)
	assert.Equal(t, core.RoleUser, messages[1].Role)
}

func TestBuilder_VariantFallback(t *testing.T) {
	tongyi := newTestBuilder(t, "tongyi")
	custom := newTestBuilder(t, "custom")
	def := newTestBuilder(t, "")

	tm, err := tongyi.BuildPrompt(nil, nil)
	require.NoError(t, err)
	cm, err := custom.BuildPrompt(nil, nil)
	require.NoError(t, err)
	dm, err := def.BuildPrompt(nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, tm[0].Content, dm[0].Content)
	assert.Equal(t, cm[0].Content, dm[0].Content)
}

func TestManager_Get(t *testing.T) {
	pm, err := NewManager()
	require.NoError(t, err)

	_, err = pm.Get("missing", DefaultVariant)
	assert.Error(t, err)

	tmpl, err := pm.Get(ChangesPrompt, "openai")
	require.NoError(t, err)
	assert.Equal(t, "changes_default.prompt", tmpl.Name())

	system, err := pm.Get(ReviewSystemPrompt, "tongyi")
	require.NoError(t, err)
	assert.Equal(t, "review_system_tongyi.prompt", system.Name())
}

func TestSplitName(t *testing.T) {
	key, variant, err := splitName("review_system_tongyi.prompt")
	require.NoError(t, err)
	assert.Equal(t, ReviewSystemPrompt, key)
	assert.Equal(t, Variant("tongyi"), variant)

	for _, bad := range []string{"changes.prompt", "_default.prompt", "changes_.prompt"} {
		_, _, err := splitName(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildAnswer(t *testing.T) {
	text := "LGTM"
	blank := "  \n"

	got, err := BuildAnswer(&core.AIResponse{Content: &text, Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "LGTM", got)

	_, err = BuildAnswer(&core.AIResponse{Model: "gpt-4o"})
	assert.ErrorIs(t, err, core.ErrEmptyCompletion)

	_, err = BuildAnswer(&core.AIResponse{Content: &blank})
	assert.ErrorIs(t, err, core.ErrEmptyCompletion)

	_, err = BuildAnswer(nil)
	assert.ErrorIs(t, err, core.ErrEmptyCompletion)
}
