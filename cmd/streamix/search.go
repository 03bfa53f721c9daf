package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/streamix/internal/state"
)

type searchOptions struct {
	jsonOutput bool
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the active provider",
		Long: `Search movies (TMDB) or shows (TVMaze). The provider is the one the
catalog loads from: TMDB when a working API key is configured, TVMaze otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, flags, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runSearch(cmd *cobra.Command, flags *rootFlags, opts *searchOptions, query string) error {
	app, err := newAppContext(flags, outputCLI, cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	store := state.NewStore(state.Initial())

	res := app.Gateway.LoadInitialCatalog(ctx)
	active := store.Dispatch(func(s state.ViewState) state.ViewState { return s.ApplyCatalog(res) }).Provider

	store.Dispatch(func(s state.ViewState) state.ViewState { return s.SetQuery(query) })
	items, applied := app.Gateway.Search(ctx, active, query)
	if applied {
		store.Dispatch(func(s state.ViewState) state.ViewState { return s.ApplySearch(items) })
	}
	current := store.Current()

	results := state.Row{Title: fmt.Sprintf("Results for %q", query), Items: current.Collections.Popular}
	if !applied {
		results.Items = nil
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return renderJSON(out, current, []state.Row{results})
	}

	fmt.Fprintf(out, "Provider: %s\n\n", current.Provider.DisplayName())
	return renderRowText(out, results, supportsUnicode(out))
}
