package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDiffCmd(t *testing.T) {
	dir := t.TempDir()
	baseline := writeFile(t, dir, "baseline.json", `{"id": "m1", "name": "Footer", "items": [
		{"id": "a", "name": "A", "type": "category", "value": "c1", "children": [{"id": "a1"}]},
		{"id": "b"},
		{"id": "c"}
	]}`)
	edited := writeFile(t, dir, "edited.json", `[
		{"id": "b"},
		{"id": "a", "children": [{"id": "c"}]},
		{"id": "new"}
	]`)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"diff", baseline, edited})
	require.NoError(t, cmd.Execute())

	var got diffOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, []moveOutput{
		{ItemID: "b", SortOrder: 0},
		{ItemID: "c", ParentID: "a", SortOrder: 0},
	}, got.Moves)
	require.Equal(t, []string{"a1"}, got.RemoveIDs)
}

func TestDiffCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `[{"id": "a", "type": "product"}]`)
	ok := writeFile(t, dir, "ok.json", `[]`)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"diff", ok, bad})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"diff", ok})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"diff", ok, filepath.Join(dir, "missing.json")})
	require.Error(t, cmd.Execute())
}

func TestDiffCmd_YAML(t *testing.T) {
	dir := t.TempDir()
	baseline := writeFile(t, dir, "baseline.yaml", `
id: m1
name: Footer
items:
  - id: a
    type: link
    value: https://example.com
  - id: b
`)
	edited := writeFile(t, dir, "edited.yml", `
- id: b
`)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"diff", baseline, edited})
	require.NoError(t, cmd.Execute())

	var got diffOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, []moveOutput{{ItemID: "b", SortOrder: 0}}, got.Moves)
	require.Equal(t, []string{"a"}, got.RemoveIDs)
}

func TestDiffCmd_PatchRoundTrip(t *testing.T) {
	dir := t.TempDir()
	baselinePath := writeFile(t, dir, "baseline.json", `{"id": "m1", "name": "Footer", "items": [
		{"id": "a", "name": "A", "type": "category", "value": "c1", "children": [{"id": "a1"}]},
		{"id": "b", "name": "B"}
	]}`)
	editedPath := writeFile(t, dir, "edited.json", `[
		{"id": "b", "name": "B"},
		{"id": "a", "name": "A", "type": "category", "value": "c1"}
	]`)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"diff", "--patch", baselinePath, editedPath})
	require.NoError(t, cmd.Execute())
	patchPath := writeFile(t, dir, "changes.json", out.String())

	baseline, err := readMenu(baselinePath)
	require.NoError(t, err)
	edited, err := readMenu(editedPath)
	require.NoError(t, err)

	patched, err := patchMenu(baseline, patchPath)
	require.NoError(t, err)
	require.Equal(t, "m1", patched.ID)
	require.Equal(t, "Footer", patched.Name)

	got, err := treejson.MarshalItems(patched.Items)
	require.NoError(t, err)
	want, err := treejson.MarshalItems(edited.Items)
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))

	same, err := itemsPatch(baseline.Items, baseline.Items)
	require.NoError(t, err)
	require.Empty(t, same)
}

func TestPatchMenu_Invalid(t *testing.T) {
	dir := t.TempDir()
	current := &menu.Menu{ID: "m1", Items: []*menu.MenuItem{{ID: "a"}}}

	_, err := patchMenu(current, writeFile(t, dir, "bad.json", `{"op": "remove"}`))
	require.Error(t, err)

	_, err = patchMenu(current, writeFile(t, dir, "missing.json", `[{"op": "remove", "path": "/5"}]`))
	require.Error(t, err)
}
