package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/streamix/internal/state"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the featured title and the three catalog rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCatalog(cmd *cobra.Command, flags *rootFlags, opts *catalogOptions) error {
	app, err := newAppContext(flags, outputCLI, cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	store := state.NewStore(state.Initial())
	res := app.Gateway.LoadInitialCatalog(cmd.Context())
	current := store.Dispatch(func(s state.ViewState) state.ViewState { return s.ApplyCatalog(res) })

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return renderJSON(out, current, current.Collections.Rows())
	}

	useUnicode := supportsUnicode(out)
	fmt.Fprintf(out, "Provider: %s\n\n", current.Provider.DisplayName())
	renderFeaturedText(out, current.Featured, useUnicode)
	for _, row := range current.Collections.Rows() {
		if err := renderRowText(out, row, useUnicode); err != nil {
			return err
		}
	}
	return nil
}
