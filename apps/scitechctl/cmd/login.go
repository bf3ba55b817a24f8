package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quatton/scitech/pkg/scsdk"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the dashboard server",
	Long: `Exchange the operator email and password for a token and store it in the
OS keyring for the configured base URL.

Examples:
  scitechctl login --email admin@example.com
  SCITECH_EMAIL=admin@example.com scitechctl login --password-stdin < pw.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig(cmd)
		if err != nil {
			return err
		}

		email := loginEmail
		if email == "" {
			email = cfg.GetString(scsdk.EmailKey)
		}
		if email == "" {
			return errors.New("--email is required")
		}

		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		sdk, err := scsdk.NewSdk(cfg)
		if err != nil {
			return err
		}
		token, err := sdk.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s\n", email)
		if info, err := scsdk.ParseTokenInfo(token); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Printf("Token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
		}
		return nil
	},
}

func readPassword(cmd *cobra.Command) (string, error) {
	if loginPassword != "" {
		return loginPassword, nil
	}

	stdinFlag, _ := cmd.Flags().GetBool("password-stdin")
	fd := int(os.Stdin.Fd())
	if stdinFlag || !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the stored token and remove it from the keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}
		if sdk.Token == "" {
			fmt.Println("Not logged in")
			return nil
		}
		if err := sdk.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Operator email (default from config key 'email')")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Operator password (prompted when omitted)")
	loginCmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
}
