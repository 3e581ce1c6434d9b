package main

import (
	"github.com/spf13/cobra"
	"github.com/wI2L/jsondiff"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
)

func newDiffCmd() *cobra.Command {
	var patch bool
	cmd := &cobra.Command{
		Use:   "diff <baseline> <edited>",
		Short: "Print the moves and removals that turn baseline into edited",
		Long: "Both files hold a tree as printed by `menuctl tree`, either the menu object " +
			"or a bare item array, as JSON or YAML. Items only present in edited are ignored.\n\n" +
			"With --patch the item arrays are compared instead and the difference is printed " +
			"as an RFC 6902 JSON patch that `menuctl apply --patch` accepts.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := readMenu(args[0])
			if err != nil {
				return err
			}
			edited, err := readMenu(args[1])
			if err != nil {
				return err
			}
			if !patch {
				return writeJSON(cmd.OutOrStdout(), newDiffOutput(menu.Diff(baseline.Items, edited.Items)))
			}
			ops, err := itemsPatch(baseline.Items, edited.Items)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ops)
		},
	}
	cmd.Flags().BoolVar(&patch, "patch", false, "Print a JSON patch of the item arrays")
	return cmd
}

func itemsPatch(from, to []*menu.MenuItem) (jsondiff.Patch, error) {
	source, err := treejson.MarshalItems(from)
	if err != nil {
		return nil, err
	}
	target, err := treejson.MarshalItems(to)
	if err != nil {
		return nil, err
	}
	ops, err := jsondiff.CompareJSON(source, target)
	if err != nil {
		return nil, err
	}
	if ops == nil {
		ops = jsondiff.Patch{}
	}
	return ops, nil
}
