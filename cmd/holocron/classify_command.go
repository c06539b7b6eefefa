package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"holocron/internal/annotate"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "classify <names>",
		Short: "Show how a character list is bucketed into main, side, and extra",
		Example: "  holocron classify \"Crew,Kallus,Stormtrooper\"\n" +
			"  holocron classify --policy first-only Yoda Mace Rex",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			if strings.TrimSpace(policy) == "" {
				policy = cfg.Characters.Policy
			}
			parsed, err := annotate.ParsePolicy(policy)
			if err != nil {
				return err
			}
			annotator, err := annotate.New(cat, annotate.WithPolicy(parsed))
			if err != nil {
				return err
			}

			chars := annotator.SplitCharacters(strings.Join(args, ","))
			title := cases.Title(language.English)
			rows := [][]string{
				{title.String("main"), strings.Join(chars.Main, ", ")},
				{title.String("side"), strings.Join(chars.Side, ", ")},
				{title.String("extra"), strings.Join(chars.Extra, ", ")},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Bucket", "Characters"}, rows, nil))
			fmt.Fprintf(out, "Policy: %s\n", annotator.Policy())
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "Character policy: leading-pair or first-only (default from config)")
	return cmd
}
