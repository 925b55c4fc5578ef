package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/op-character-creator/internal/orchestrators/character"
)

func newRandomCmd(opts *rootOptions) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random character",
		Long:  `Draw one random value for every visible trait, print the character and save it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			out, err := a.characters.GenerateRandom(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printCharacter(w, a.characters, a.settings.FilterTraits(a.catalog.Traits()), out.Character)
			if noSave {
				return nil
			}

			saved, err := a.characters.Save(ctx, &character.SaveInput{Character: out.Character})
			if err != nil {
				return err
			}
			reportSave(w, saved)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "print the character without storing it")
	return cmd
}

func newFormCmd(opts *rootOptions) *cobra.Command {
	var (
		selections map[string]string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Build a character from chosen trait values",
		Long: `Build a character from trait value ids. Use "creator traits" to list the ids.
The character is saved once every visible trait has a value, or with --force.`,
		Example: `  creator form --set facial_trait=1 --set body_trait=2
  creator form --set facial_trait=1,weapon_trait=5 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			out, err := a.characters.FromUserInput(ctx, &character.FromUserInputInput{Selections: selections})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Skipped) > 0 {
				fmt.Fprintf(w, "Ignored selections for: %s\n\n", strings.Join(out.Skipped, ", "))
			}
			printCharacter(w, a.characters, a.settings.FilterTraits(a.catalog.Traits()), out.Character)

			if missing := a.characters.MissingTraits(out.Character); len(missing) > 0 {
				titles := make([]string, len(missing))
				for i, t := range missing {
					titles[i] = fmt.Sprintf("%s (%s)", t.Title, t.Code)
				}
				fmt.Fprintf(w, "\nStill missing: %s\n", strings.Join(titles, ", "))
				if !force {
					fmt.Fprintln(w, "Not saved. Fill in the missing traits or pass --force.")
					return nil
				}
			}

			saved, err := a.characters.Save(ctx, &character.SaveInput{Character: out.Character})
			if err != nil {
				return err
			}
			reportSave(w, saved)
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&selections, "set", nil, "trait_code=value_id, repeatable")
	cmd.Flags().BoolVar(&force, "force", false, "save even when traits are missing")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			return printSaved(ctx, cmd.OutOrStdout(), a.characters, a.settings.FilterTraits(a.catalog.Traits()))
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			out, err := a.characters.Clear(ctx)
			if err != nil {
				return err
			}
			if out.Cleared {
				fmt.Fprintln(cmd.OutOrStdout(), "Saved character cleared.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "The saved character could not be cleared.")
			}
			return nil
		},
	}
}
