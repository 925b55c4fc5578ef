package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTraitsCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "traits",
		Short: "List traits and their value ids",
		Long:  `List every visible trait with its values. Hidden traits are listed with --all.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			traits := a.catalog.Traits()
			if !all {
				traits = a.settings.FilterTraits(traits)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Data schema %s\n", a.catalog.Meta().DataSchemaVersion)
			for _, trait := range traits {
				hidden := ""
				if !a.settings.ShouldShowTrait(trait.Code) {
					hidden = " [hidden]"
				}
				fmt.Fprintf(w, "\n%s (%s)%s\n", trait.Title, trait.Code, hidden)

				for _, tv := range a.catalog.TraitValues(trait.Code) {
					fmt.Fprintf(w, "  %4d  %s\n", tv.ID, tv.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include hidden traits")
	return cmd
}
