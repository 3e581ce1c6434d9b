package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/gql"
	"github.com/iota-uz/commerce-admin/pkg/configuration"
	"github.com/iota-uz/commerce-admin/pkg/graphql"
	"github.com/iota-uz/commerce-admin/pkg/logging"
)

type rootOptions struct {
	apiURL  string
	token   string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "menuctl",
		Short:         "Inspect, diff and apply navigation menu trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "GraphQL endpoint (default $API_URL)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "API token (default $API_TOKEN)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")

	cmd.AddCommand(newTreeCmd(opts))
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newApplyCmd(opts))
	return cmd
}

func (o *rootOptions) logger() *logrus.Logger {
	level := logrus.WarnLevel
	if o.verbose {
		level = logrus.DebugLevel
	}
	return logging.ConsoleLogger(level)
}

// repository builds a menu repository from flags, falling back to the same
// environment the server reads.
func (o *rootOptions) repository() (menu.Repository, error) {
	if _, err := configuration.LoadEnv([]string{".env", ".env.local"}); err != nil {
		return nil, err
	}
	api := configuration.APIOptions{}
	if err := env.Parse(&api); err != nil {
		return nil, err
	}
	if o.apiURL != "" {
		api.URL = o.apiURL
	}
	if o.token != "" {
		api.Token = o.token
	}
	if err := api.Validate(); err != nil {
		return nil, err
	}
	client := graphql.NewClient(api.URL, graphql.WithToken(api.Token), graphql.WithTimeout(api.Timeout))
	return gql.NewMenuRepository(client), nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
