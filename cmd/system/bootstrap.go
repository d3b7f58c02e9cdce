package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinovahq/clinova_backend/config"
	"github.com/clinovahq/clinova_backend/internal/repo"
	entuser "github.com/clinovahq/clinova_backend/internal/repo/user"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
	"github.com/clinovahq/clinova_backend/pkg/database"
	"github.com/clinovahq/clinova_backend/pkg/util/password"
)

// NewBootstrapCommand creates the first platform super admin account.
// Idempotent: an existing account with the same email is promoted instead.
func NewBootstrapCommand() *cobra.Command {
	var (
		adminEmail string
		adminPass  string
		firstName  string
		lastName   string
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the platform super admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if adminEmail == "" || adminPass == "" {
				return fmt.Errorf("--email and --password are required")
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx := context.Background()
			emailAddr := strings.ToLower(strings.TrimSpace(adminEmail))

			u, err := client.User.Query().
				Where(entuser.EmailEqualFold(emailAddr), entuser.DeletedAtIsNil()).
				Only(ctx)
			switch {
			case repo.IsNotFound(err):
				passHash, hashErr := password.Hash(adminPass)
				if hashErr != nil {
					return fmt.Errorf("failed to hash password: %w", hashErr)
				}
				u, err = client.User.Create().
					SetEmail(emailAddr).
					SetPasswordHash(passHash).
					SetFirstName(firstName).
					SetLastName(lastName).
					SetEmailVerified(true).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("failed to create admin user: %w", err)
				}
			case err != nil:
				return fmt.Errorf("failed to look up admin user: %w", err)
			}

			dsn := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			subject := authorize.GroupSubject(u.ID.String())
			if _, err := auth.AddRoleForUserInDomain(ctx, subject, authorize.RolePlatformSuperAdmin, authorize.DomainSys); err != nil {
				return fmt.Errorf("failed to assign super admin role: %w", err)
			}

			fmt.Printf("Super admin ready: %s (%s)\n", emailAddr, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "email", "", "Admin email address")
	cmd.Flags().StringVar(&adminPass, "password", "", "Admin password")
	cmd.Flags().StringVar(&firstName, "first-name", "Platform", "Admin first name")
	cmd.Flags().StringVar(&lastName, "last-name", "Admin", "Admin last name")

	return cmd
}
