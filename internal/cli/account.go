package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/pkg/client"
)

func (a *app) saveSession(cmd *cobra.Command, res *client.AuthResult) error {
	a.cfg.Token = res.Token
	a.cfg.Email = res.User.Email
	if err := SaveConfig(a.configPath, a.cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s signed in as %s <%s>\n", green("✓"), bold(res.User.Name), res.User.Email)
	return nil
}

func (a *app) registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd, cmd.InOrStdin(), password)
			if err != nil {
				return err
			}
			res, err := a.client().Register(cmd.Context(), name, email, secret)
			if err != nil {
				return err
			}
			return a.saveSession(cmd, res)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd, cmd.InOrStdin(), password)
			if err != nil {
				return err
			}
			res, err := a.client().Login(cmd.Context(), email, secret)
			if err != nil {
				return err
			}
			return a.saveSession(cmd, res)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Token = ""
			a.cfg.Email = ""
			if err := SaveConfig(a.configPath, a.cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (a *app) profileCmd() *cobra.Command {
	var name, email, newPassword, currentPassword string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}

			var user *client.User
			changing := cmd.Flags().Changed("name") || cmd.Flags().Changed("email") || cmd.Flags().Changed("new-password")
			if changing {
				patch := client.ProfilePatch{}
				if cmd.Flags().Changed("name") {
					patch.Name = &name
				}
				if cmd.Flags().Changed("email") {
					patch.Email = &email
				}
				if cmd.Flags().Changed("new-password") {
					current, err := readSecret(cmd, cmd.InOrStdin(), currentPassword)
					if err != nil {
						return err
					}
					patch.Password = &newPassword
					patch.CurrentPassword = &current
				}
				user, err = c.UpdateProfile(cmd.Context(), patch)
			} else {
				user, err = c.Profile(cmd.Context())
			}
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", cyan("Name: "), user.Name)
			fmt.Fprintf(out, "%s %s\n", cyan("Email:"), user.Email)
			fmt.Fprintf(out, "%s %s\n", cyan("Since:"), user.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New email address")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "New password")
	cmd.Flags().StringVar(&currentPassword, "current-password", "", "Current password (prompted when omitted)")
	return cmd
}
