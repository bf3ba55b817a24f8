package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [id]",
	Short: "Follow live machine updates",
	Long: `Print every machine update pushed by the server until interrupted.
Pass an id to follow a single machine.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := 0
		if len(args) == 1 {
			var err error
			if id, err = parseID(args[0]); err != nil {
				return err
			}
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if id != 0 {
			fmt.Printf("📡 Watching machine %d (Ctrl+C to stop)\n", id)
		} else {
			fmt.Println("📡 Watching all machines (Ctrl+C to stop)")
		}

		return sdk.Watch(ctx, id, func(m schemas.Machine) error {
			fmt.Printf("%s  #%d %-28s %-8s %3d°C  %g kWh\n",
				time.Now().Format("15:04:05"), m.ID, m.Name, m.Status, m.Temperature, m.EnergyConsumption)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
