package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"crisisAlert/internal/components"
	"crisisAlert/internal/config"
	"crisisAlert/internal/domain"
	"crisisAlert/internal/middleware"
	"crisisAlert/internal/storage/postgres"
)

func main() {
	rootCmd := cobra.Command{
		Use:          "crisisctl",
		Short:        "maintenance commands for the crisis alert service",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		migrateCommand(),
		tokenCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply or roll back database migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.MigrateUp(cfg.Postgres.URL(), components.SetupLogger(cfg.Env))
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.MigrateDown(cfg.Postgres.URL(), steps, components.SetupLogger(cfg.Env))
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

func tokenCommand() *cobra.Command {
	var (
		userID int64
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "issue an access token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user-id must be positive")
			}
			switch r := domain.Role(role); r {
			case domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			raw, err := middleware.IssueToken(cfg.Auth.JWTSecret, cfg.Auth.Issuer, domain.Actor{UserID: userID, Role: domain.Role(role)}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "user id placed in the token")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleUser), "user, admin or super_admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
