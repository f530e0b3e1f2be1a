package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/npc-engine/internal/config"
	"github.com/jwebster45206/npc-engine/pkg/actor"
	"github.com/jwebster45206/npc-engine/pkg/characters"
)

func validateCmd() *cobra.Command {
	var promptsFile string

	cmd := &cobra.Command{
		Use:   "validate [npc.yaml]...",
		Short: "Check that the prompt templates only use known variables",
		Long: "Check that the prompt templates only use known variables.\n" +
			"NPC files add their custom vars to the variables allowed in the single-NPC prompt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptsFile == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				promptsFile = cfg.PromptsFile
			}

			tpl, err := config.LoadPrompts(promptsFile)
			if err != nil {
				return err
			}

			single, err := singleVars(args)
			if err != nil {
				return err
			}
			multi := append(slices.Clone(characters.SharedVars), characters.MultiVars...)

			if err := tpl.Check(single, multi); err != nil {
				return fmt.Errorf("%s: %w", promptsFile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid!\n", promptsFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&promptsFile, "prompts", "", "prompts file to check (defaults to PROMPTS_FILE)")
	return cmd
}

// singleVars returns every variable available to the single-NPC template.
func singleVars(npcFiles []string) ([]string, error) {
	known := make(map[string]bool)
	for _, v := range characters.SharedVars {
		known[v] = true
	}

	// Built-in NPC fields are always present
	blank, err := actor.NewNPCFromSpec(&actor.NPCSpec{Name: "-"})
	if err != nil {
		return nil, err
	}
	for k := range blank.ReplacementDict() {
		known[k] = true
	}

	for _, p := range npcFiles {
		npc, err := actor.LoadNPC(p)
		if err != nil {
			return nil, err
		}
		for k := range npc.ReplacementDict() {
			known[k] = true
		}
	}

	return slices.Sorted(maps.Keys(known)), nil
}
