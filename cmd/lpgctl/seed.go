package main

import (
	"fmt"

	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/seed"
	"lpg-backoffice/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	roleDefaultsFile string
	resetTenants     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create or update the super admin and check the role-default template",
	Long: `seed creates the platform super admin from SUPER_ADMIN_EMAIL and SUPER_ADMIN_PASSWORD,
or resets its password when it exists. The role-default template (built in, or --file)
is validated; with --reset-tenants it is written to every existing distributor.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := seed.LoadRoleDefaults(roleDefaultsFile)
		if err != nil {
			return err
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		users := repository.NewUserRepository(e.db)
		user, created, err := seed.EnsureSuperAdmin(ctx, users, e.cfg.SuperAdminEmail, e.cfg.SuperAdminPassword)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"email": user.Email, "created": created}).Info("super admin ready")

		if !resetTenants {
			fmt.Fprintf(cmd.OutOrStdout(), "super admin %s ready; role template has %d roles\n", user.Email, len(defaults))
			return nil
		}

		access := service.NewAccessService(repository.NewPermissionRepository(e.db), users, defaults)
		platform := repository.NewPlatformRepository(e.db)
		const batch = 100
		reset := 0
		for offset := 0; ; offset += batch {
			tenants, _, err := platform.ListTenants(ctx, "", batch, offset)
			if err != nil {
				return fmt.Errorf("list tenants: %w", err)
			}
			for _, t := range tenants {
				if err := access.ResetRoleDefaults(ctx, t.AdminID); err != nil {
					return fmt.Errorf("reset role defaults for %s: %w", t.AdminID, err)
				}
				reset++
			}
			if len(tenants) < batch {
				break
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "super admin %s ready; role defaults reset for %d tenants\n", user.Email, reset)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&roleDefaultsFile, "file", "", "role-default template (YAML); the built-in template when empty")
	seedCmd.Flags().BoolVar(&resetTenants, "reset-tenants", false, "overwrite the role defaults of every existing tenant")
	rootCmd.AddCommand(seedCmd)
}
