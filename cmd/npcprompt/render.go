package main

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/npc-engine/internal/config"
	"github.com/jwebster45206/npc-engine/pkg/characters"
	"github.com/jwebster45206/npc-engine/pkg/prompts"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func renderCmd() *cobra.Command {
	var (
		wrap     int
		copyOut  bool
		showVars bool
	)

	cmd := &cobra.Command{
		Use:   "render <npc.yaml>...",
		Short: "Print the system prompt for a conversation with the given NPCs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tpl, err := config.LoadPrompts(cfg.PromptsFile)
			if err != nil {
				return err
			}

			s, err := newSession(ctx, cfg, tpl)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.addNPCs(args); err != nil {
				return err
			}

			prompt, err := s.manager.SystemPrompt(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("System prompt (%s, %d NPC)", s.manager.Mode(), s.manager.Count())))
			if wrap > 0 {
				fmt.Fprintln(out, wordwrap.String(prompt, wrap))
			} else {
				fmt.Fprintln(out, prompt)
			}

			if showVars {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headingStyle.Render("Variables"))
				printVars(cmd, s.manager.VariableMapping(ctx))
			}

			if copyOut {
				if err := clipboard.WriteAll(prompt); err != nil {
					s.log.Warn("Failed to copy prompt to clipboard", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&wrap, "wrap", 0, "wrap the prompt at this many columns (0 disables)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the rendered prompt to the clipboard")
	cmd.Flags().BoolVar(&showVars, "vars", false, "also print the variable mapping")
	return cmd
}

func printVars(cmd *cobra.Command, vars map[string]any) {
	keys := slices.Sorted(maps.Keys(vars))
	for _, k := range keys {
		if k == characters.VarBehaviorSummary {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: (%d chars)\n", k, len(prompts.Stringify(vars[k])))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, prompts.Stringify(vars[k]))
	}
}
