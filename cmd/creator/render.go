package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/orchestrators/character"
)

// printCharacter writes the trait table and the description
func printCharacter(w io.Writer, svc character.Service, traits []*entities.Trait, char *entities.Character) {
	fmt.Fprintf(w, "Character %s (created %s)\n\n", char.ID, char.CreatedAt.Format(time.RFC3339))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, trait := range traits {
		value := "-"
		if char.HasValue(trait.Code) {
			value = char.GetTrait(trait.Code).Value
		}
		fmt.Fprintf(tw, "%s\t%s\n", trait.Title, value)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\n%s\n", svc.GenerateDescription(char))
}

// printSaved writes the stored character, or a notice when there is none
func printSaved(ctx context.Context, w io.Writer, svc character.Service, traits []*entities.Trait) error {
	out, err := svc.Load(ctx)
	if err != nil {
		return err
	}
	if out.Character == nil {
		fmt.Fprintln(w, "No saved character. Run `creator random` or `creator form` to make one.")
		return nil
	}

	printCharacter(w, svc, traits, out.Character)

	summary := out.Character.Summary()
	status := "complete"
	if !svc.IsComplete(out.Character) {
		status = "incomplete"
	}
	fmt.Fprintf(w, "\n%d traits, %s\n", summary.TraitCount, status)
	return nil
}

// reportSave tells the user when the character could not be stored
func reportSave(w io.Writer, out *character.SaveOutput) {
	if out.Persisted {
		fmt.Fprintln(w, "\nSaved as the current character.")
		return
	}
	fmt.Fprintln(w, "\nThe character could not be saved; it will not be available next time.")
}
