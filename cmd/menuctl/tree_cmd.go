package main

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
	"github.com/iota-uz/commerce-admin/pkg/composables"
)

func newTreeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <menu-id>",
		Short: "Print a menu as tree JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			log := opts.logger()
			ctx := composables.WithLogger(cmd.Context(), log.WithField("command", "tree"))

			start := time.Now()
			m, err := repo.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			log.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("fetched menu")

			raw, err := treejson.MarshalMenu(m)
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return err
			}
			out.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
}
