// Command adminctl provisions administrator logins in the configured store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hema-A-05/MERN-flasklite/internal/config"
	"github.com/Hema-A-05/MERN-flasklite/internal/database"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
	"github.com/Hema-A-05/MERN-flasklite/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Manage administrator accounts",
		SilenceUsage: true,
	}
	root.AddCommand(newCreateUserCmd())
	return root
}

func newCreateUserCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an administrator login (no-op if the email exists)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.StoreDriver == config.StoreDriverMemory {
				return fmt.Errorf("create-user needs a persistent store, STORE_DRIVER is %q", cfg.StoreDriver)
			}
			l := logger.NewWithWriter(cfg.Env, cmd.ErrOrStderr())

			ctx := context.Background()
			repos, err := database.OpenRepos(ctx, cfg)
			if err != nil {
				return err
			}
			defer repos.Close()

			auth := service.NewAuthService(repos.Users, utils.NewJWTIssuer(cfg.SessionSecret, cfg.TokenTTL))
			u, created, err := auth.EnsureUser(ctx, email, password)
			if err != nil {
				return err
			}
			l.Info().Str("id", u.ID).Str("email", u.Email).Bool("created", created).Msg("admin user")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
