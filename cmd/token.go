// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/pkg/client"
)

var (
	tokenEndpoint    string
	tokenCredentials string
	tokenEmail       string
	tokenPassword    string
)

// tokenCmd groups the session management subcommands. Credentials are
// kept in a file-backed store so the refreshing transport can renew the
// access token between invocations.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage an API session",
	Long:  `Log in to the service, inspect the current session and log out again.`,
}

var tokenLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the credential pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}

		principal, err := c.Login(cmd.Context(), tokenEmail, tokenPassword)
		if err != nil {
			return err
		}

		cmd.Printf("Logged in as %s (%s)\n", principal.Email, principal.ID)
		return nil
	},
}

var tokenRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account and store the credential pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}

		principal, err := c.Register(cmd.Context(), tokenEmail, tokenPassword)
		if err != nil {
			return err
		}

		cmd.Printf("Registered %s (%s)\n", principal.Email, principal.ID)
		return nil
	},
}

var tokenWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the principal behind the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}

		principal, err := c.Me(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Printf("%s (%s)\n", principal.Email, principal.ID)
		return nil
	},
}

var tokenLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored credential pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}

		if err := c.Logout(cmd.Context()); err != nil {
			return err
		}

		cmd.Println("Logged out")
		return nil
	},
}

func newAPIClient() (*client.Client, error) {
	path := tokenCredentials
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".workspace-service", "credentials.json")
	}

	store := client.NewFileCredentialStore(path)

	return client.NewClient(tokenEndpoint, store, logging.NewNoopLogger()), nil
}

func init() {
	tokenCmd.PersistentFlags().StringVar(&tokenEndpoint, "endpoint", "http://localhost:8080", "Service endpoint")
	tokenCmd.PersistentFlags().StringVar(&tokenCredentials, "credentials", "", "Credential file path")

	for _, c := range []*cobra.Command{tokenLoginCmd, tokenRegisterCmd} {
		c.Flags().StringVar(&tokenEmail, "email", "", "Account email")
		c.Flags().StringVar(&tokenPassword, "password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}

	tokenCmd.AddCommand(tokenLoginCmd)
	tokenCmd.AddCommand(tokenRegisterCmd)
	tokenCmd.AddCommand(tokenWhoamiCmd)
	tokenCmd.AddCommand(tokenLogoutCmd)

	rootCmd.AddCommand(tokenCmd)
}
