package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/streamix/internal/state"
	"github.com/alexisbeaulieu97/streamix/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Long:  `Open the full-screen browser with the featured title, the popular, trending and action rows, search and a detail view.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(flags, outputTUI, cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	log := app.Logger.With("command", "browse")
	log.Info("launching browser")

	m := browser.NewModel(ctx, app.Gateway, browser.Options{
		Theme:      state.ParseTheme(app.Config.UI.Theme),
		UseUnicode: supportsUnicode(cmd.OutOrStdout()),
		Logger:     app.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	log.Info("browser closed")
	return nil
}
