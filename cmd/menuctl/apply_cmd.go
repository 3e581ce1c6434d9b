package main

import (
	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
	"github.com/iota-uz/commerce-admin/modules/menus/services"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
)

// errMutation reports that the API rejected the save. The errors are
// already printed.
var errMutation = errors.New("menu update rejected")

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var (
		name  string
		apply bool
		patch bool
	)
	cmd := &cobra.Command{
		Use:   "apply <menu-id> <edited>",
		Short: "Save an edited tree over the current menu (default dry-run)",
		Long: "edited is a tree file as accepted by `menuctl diff`. With --patch it is an " +
			"RFC 6902 JSON patch applied to the current item array instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			log := opts.logger()
			ctx := composables.WithLogger(cmd.Context(), log.WithField("command", "apply"))

			current, err := repo.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			var edited *menu.Menu
			if patch {
				edited, err = patchMenu(current, args[1])
			} else {
				edited, err = readMenu(args[1])
			}
			if err != nil {
				return err
			}
			if name == "" {
				name = current.Name
			}
			out := applyOutput{
				Command: "apply",
				DryRun:  !apply,
				Diff:    newDiffOutput(menu.Diff(current.Items, edited.Items)),
				Errors:  []errorOutput{},
			}
			if apply {
				svc := services.NewMenuService(repo, eventbus.NewEventPublisher(log), nil, 0)
				errs, err := svc.SubmitTree(ctx, args[0], name, edited.Items)
				if err != nil {
					return err
				}
				out.Errors = newErrorOutput(errs)
			}
			if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if len(out.Errors) > 0 {
				return errMutation
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New menu name (default keeps the current one)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply changes (default dry-run)")
	cmd.Flags().BoolVar(&patch, "patch", false, "Read edited as a JSON patch against the current items")
	return cmd
}

func patchMenu(current *menu.Menu, path string) (*menu.Menu, error) {
	raw, err := readTree(path)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "decode patch %s", path)
	}
	doc, err := treejson.MarshalItems(current.Items)
	if err != nil {
		return nil, err
	}
	doc, err = p.Apply(doc)
	if err != nil {
		return nil, errors.Wrap(err, "apply patch")
	}
	items, err := treejson.UnmarshalItems(doc)
	if err != nil {
		return nil, err
	}
	return &menu.Menu{ID: current.ID, Name: current.Name, Slug: current.Slug, Items: items}, nil
}
