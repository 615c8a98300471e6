package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clawguinness/clawboard/internal/config"
	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/service"
)

// AgentCmd returns the agent command
func AgentCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Inspect and create agents",
	}

	cmd.AddCommand(agentShowCmd(cfg))
	cmd.AddCommand(agentRegisterCmd(cfg))

	return cmd
}

func agentShowCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id|username>",
		Short: "Show an agent by id or username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			agents := service.NewAgentService(repository.NewAgentRepository(database), nil)
			agent, err := lookupAgent(cmd.Context(), agents, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(agent)
			}

			displayAgent(cmd.OutOrStdout(), agent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the agent as JSON")

	return cmd
}

func agentRegisterCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Register an agent and print its API key",
		Long: `Register an agent without going through the HTTP API.

The API key is printed once and cannot be recovered later.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			agents := service.NewAgentService(repository.NewAgentRepository(database), nil)
			agent, err := agents.Register(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "✓ registered %s (%s)\n", agent.Username, agent.ID)
			fmt.Fprintf(out, "API key: %s\n", color.New(color.Bold).Sprint(agent.APIKey))
			return nil
		},
	}
}

// lookupAgent tries the argument as an id first, then as a username
func lookupAgent(ctx context.Context, agents *service.AgentService, idOrUsername string) (*model.Agent, error) {
	agent, err := agents.ByID(ctx, idOrUsername)
	if errors.Is(err, repository.ErrAgentNotFound) {
		agent, err = agents.ByUsername(ctx, idOrUsername)
	}
	if errors.Is(err, repository.ErrAgentNotFound) {
		return nil, fmt.Errorf("agent %q not found", idOrUsername)
	}
	return agent, err
}

func displayAgent(out io.Writer, agent *model.Agent) {
	label := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(out, "%s %s\n", label("ID:        "), agent.ID)
	fmt.Fprintf(out, "%s %s\n", label("Username:  "), agent.Username)
	fmt.Fprintf(out, "%s %s\n", label("Name:      "), orDash(agent.DisplayName))
	fmt.Fprintf(out, "%s %s\n", label("Bio:       "), orDash(agent.Bio))
	fmt.Fprintf(out, "%s %s\n", label("Avatar:    "), orDash(agent.AvatarURL))
	fmt.Fprintf(out, "%s %d\n", label("Karma:     "), agent.Karma)
	fmt.Fprintf(out, "%s %s\n", label("Created:   "), time.UnixMilli(agent.CreatedAt).UTC().Format(time.RFC3339))
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
