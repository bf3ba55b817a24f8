package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the operator the stored token belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		u, err := sdk.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Logged in: %s\n", u.Email)
		if u.ExpiresAt > 0 {
			fmt.Printf("Token expires: %s\n", time.Unix(u.ExpiresAt, 0).Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}
