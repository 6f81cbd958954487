package cli

import (
	"github.com/spf13/cobra"
)

// Commands builds the command tree. get is called when a command runs, so the
// services behind Cli can be created after flags and config are parsed.
func Commands(get func() *Cli) []*cobra.Command {
	return []*cobra.Command{
		registerCommand(get),
		loginCommand(get),
		logoutCommand(get),
		clientCommand(get),
		sessionCommand(get),
		noteCommand(get),
		syncCommand(get),
		watchCommand(get),
		statusCommand(get),
	}
}

func registerCommand(get func() *Cli) *cobra.Command {
	var (
		username  string
		passwords Passwords
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runRegister(cmd.Context(), username, passwords)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "read password from file")
	return cmd
}

func loginCommand(get func() *Cli) *cobra.Command {
	var (
		username  string
		passwords Passwords
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runLogin(cmd.Context(), username, passwords)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "read password from file")
	return cmd
}

func logoutCommand(get func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runLogout(cmd.Context())
		},
	}
}

func syncCommand(get func() *Cli) *cobra.Command {
	var (
		quick  bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push local changes and pull remote updates",
		Long: `Runs one sync cycle. A full cycle pushes every dirty record and then pulls
all records from the server; --quick only pushes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runSync(cmd.Context(), quick, output)
		},
	}
	cmd.Flags().BoolVar(&quick, "quick", false, "push only, skip pull")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text|yaml")
	return cmd
}

func watchCommand(get func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run full sync cycles periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runWatch(cmd.Context())
		},
	}
}

func statusCommand(get func() *Cli) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication and sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runStatus(cmd.Context(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text|yaml")
	return cmd
}
