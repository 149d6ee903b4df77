package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universal-mcp/google-mail/internal/google"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Google OAuth tokens",
		Long: `Authorize Gmail access from the terminal.

Run "auth url" to print the authorization URL, visit it in a browser,
then run "auth save <code>" with the authorization code. Tokens are
stored per account and refreshed automatically afterwards.`,
	}

	cmd.AddCommand(newAuthURLCmd())
	cmd.AddCommand(newAuthSaveCmd())
	cmd.AddCommand(newAuthStatusCmd())

	return cmd
}

func newAuthURLCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the OAuth authorization URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Visit this URL to authorize Gmail access for account %q:\n\n%s\n\nThen run: google-mail auth save <code> --account %s\n",
				account, google.GetAuthURLForAccount(account), account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	return cmd
}

func newAuthSaveCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "save <authorization-code>",
		Short: "Exchange an authorization code for a token and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := google.SaveTokenForAccount(context.Background(), account, args[0]); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}
			fmt.Printf("Token saved for account %q\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a token exists for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasTokenForAccount(account) {
				fmt.Printf("Account %q is authorized\n", account)
			} else {
				fmt.Printf("Account %q has no token. Run \"google-mail auth url --account %s\" to authorize.\n", account, account)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	return cmd
}
