package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/npc-engine/internal/config"
	"github.com/jwebster45206/npc-engine/pkg/prompts"
)

func dispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch [response]",
		Short: "Scan a model response for behavior keywords and apply them to the game",
		Long:  "Scan a model response for behavior keywords and apply them to the game.\nThe response is read from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			response, err := readResponse(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Templates are not needed to run behaviors.
			s, err := newSession(ctx, cfg, prompts.Templates{})
			if err != nil {
				return err
			}
			defer s.Close()

			fired := s.behaviors.Dispatch(ctx, response)
			if len(fired) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No behaviors triggered.")
				return nil
			}
			for _, kw := range fired {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}
}

func readResponse(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read response from stdin: %w", err)
	}
	response := strings.TrimSpace(string(data))
	if response == "" {
		return "", fmt.Errorf("response cannot be empty")
	}
	return response, nil
}
