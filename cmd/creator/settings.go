package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/settings"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Choose which optional traits are used",
		Long: `Voice, personality and weapon traits can be hidden. Hidden traits are not
generated, not required and left out of descriptions. Changes are saved immediately.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			printSettings(cmd.OutOrStdout(), a.settings)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "toggle <trait_code>",
		Short:     "Flip whether a trait is shown",
		Args:      cobra.ExactArgs(1),
		ValidArgs: settings.TogglableTraits,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.settings.Toggle(ctx, args[0]); err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), a.settings)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <trait_code> <true|false>",
		Short: "Show or hide a trait",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			show, err := strconv.ParseBool(args[1])
			if err != nil {
				return errors.InvalidArgumentf("%q is not true or false", args[1])
			}

			ctx := cmd.Context()
			a, err := opts.newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.settings.SetVisible(ctx, args[0], show); err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), a.settings)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Show every trait again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			a.settings.Reset(ctx)
			printSettings(cmd.OutOrStdout(), a.settings)
			return nil
		},
	})

	return cmd
}

func printSettings(w io.Writer, m *settings.Manager) {
	for _, code := range settings.TogglableTraits {
		state := "shown"
		if !m.ShouldShowTrait(code) {
			state = "hidden"
		}
		fmt.Fprintf(w, "%-18s %s\n", code, state)
	}
}
