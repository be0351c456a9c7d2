package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/hive/internal/config"
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/internal/logging"
	"github.com/nfrund/hive/internal/profile"
	"github.com/nfrund/hive/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect account profiles",
}

var profileLookupCmd = &cobra.Command{
	Use:   "lookup <login-id>",
	Short: "Show the profile a login ID resolves to",
	Long: `Runs the same lookup the login form uses and prints the profile row,
including the email that is sent to the auth provider.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.New()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		injector := server.NewContainer(cfg)
		defer injector.Shutdown()

		resolver, err := do.Invoke[*profile.Resolver](injector)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetLookupTimeout())
		defer cancel()

		p, err := resolver.ByLoginID(ctx, args[0])
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("no profile with login ID %q", args[0])
		}
		if err != nil {
			return err
		}
		return printProfile(cmd, p)
	},
}

func printProfile(cmd *cobra.Command, p *domain.Profile) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "auth_id\t%s\n", p.ID)
	fmt.Fprintf(w, "user_id\t%s\n", p.LoginID)
	fmt.Fprintf(w, "email\t%s\n", p.Email)
	fmt.Fprintf(w, "display_name\t%s\n", p.DisplayName())
	fmt.Fprintf(w, "role\t%s\n", p.RoleLabel())
	return w.Flush()
}

func init() {
	profileCmd.AddCommand(profileLookupCmd)
	rootCmd.AddCommand(profileCmd)
}
