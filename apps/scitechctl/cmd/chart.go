package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scsdk"
	"github.com/spf13/cobra"
)

const chartWidth = 40

var chartCmd = &cobra.Command{
	Use:   "chart <id>",
	Short: "Print an illustrative 7-day temperature chart for a machine",
	Long: `Print a 7-day temperature chart around the machine's current temperature.
The series is simulated for demonstration; no history is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}
		m, err := sdk.GetMachine(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (now %d°C)\n", m.Name, m.Temperature)
		for _, p := range scsdk.TemperatureSeries(m.Temperature, time.Now(), nil) {
			fmt.Printf("%-7s %3d°C %s\n", p.Label, p.Temperature, bar(p.Temperature))
		}
		fmt.Println("* simulated data for demonstration purposes")
		return nil
	},
}

// bar scales t from the simulator's range onto chartWidth cells.
func bar(t int) string {
	span := schemas.MaxTemperature - schemas.MinTemperature
	n := (min(max(t, schemas.MinTemperature), schemas.MaxTemperature) - schemas.MinTemperature) * chartWidth / span
	return strings.Repeat("█", max(n, 1))
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
