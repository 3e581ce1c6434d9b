package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readTree returns the file as JSON. Files ending in .yaml or .yml are
// converted first so hand-written trees can skip the braces.
func readTree(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		return json.Marshal(doc)
	}
	return raw, nil
}

func readMenu(path string) (*menu.Menu, error) {
	raw, err := readTree(path)
	if err != nil {
		return nil, err
	}
	m, err := treejson.UnmarshalMenu(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return m, nil
}

type moveOutput struct {
	ItemID    string `json:"itemId"`
	ParentID  string `json:"parentId,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

type diffOutput struct {
	Moves     []moveOutput `json:"moves"`
	RemoveIDs []string     `json:"removeIds"`
}

func newDiffOutput(moves []menu.Move, removeIDs []string) diffOutput {
	out := diffOutput{Moves: make([]moveOutput, 0, len(moves)), RemoveIDs: removeIDs}
	for _, m := range moves {
		out.Moves = append(out.Moves, moveOutput{ItemID: m.ItemID, ParentID: m.ParentID, SortOrder: m.SortOrder})
	}
	return out
}

type errorOutput struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type applyOutput struct {
	Command string        `json:"command"`
	DryRun  bool          `json:"dry_run"`
	Diff    diffOutput    `json:"diff"`
	Errors  []errorOutput `json:"errors"`
}

func newErrorOutput(errs []menu.MutationError) []errorOutput {
	out := make([]errorOutput, 0, len(errs))
	for _, e := range errs {
		out = append(out, errorOutput{Field: e.Field, Message: e.Message, Code: string(e.Code)})
	}
	return out
}
