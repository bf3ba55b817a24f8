package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scsdk"
	"github.com/spf13/cobra"
)

var machinesCmd = &cobra.Command{
	Use:     "machines",
	Aliases: []string{"machine", "m"},
	Short:   "List, inspect and update machines",
}

var machinesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every machine",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}
		all, err := sdk.ListMachines(cmd.Context())
		if err != nil {
			return err
		}
		printMachines(all...)
		return nil
	},
}

var machinesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one machine",
	Args:  cobra.ExactArgs(1),
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
		printMachines(*m)
		return nil
	},
}

var machinesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a machine's status and/or energy consumption",
	Long: `Change a machine's status and/or energy consumption. Fields that are not
given keep their current value. Every connected dashboard sees the change.

Examples:
  scitechctl machines update 2 --status Running
  scitechctl machines update 1 --energy 950.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var upd scsdk.MachineUpdate
		if cmd.Flags().Changed("status") {
			s, _ := cmd.Flags().GetString("status")
			upd.Status = &s
		}
		if cmd.Flags().Changed("energy") {
			e, _ := cmd.Flags().GetFloat64("energy")
			upd.EnergyConsumption = &e
		}
		if upd.Status == nil && upd.EnergyConsumption == nil {
			return errors.New("nothing to update: pass --status and/or --energy")
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}
		m, err := sdk.UpdateMachine(cmd.Context(), id, upd)
		if err != nil {
			return err
		}
		printMachines(*m)
		return nil
	},
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid machine id %q", s)
	}
	return id, nil
}

func printMachines(ms ...schemas.Machine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTEMP (°C)\tENERGY (kWh)")
	for _, m := range ms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%g\n", m.ID, m.Name, m.Status, m.Temperature, m.EnergyConsumption)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(machinesCmd)
	machinesCmd.AddCommand(machinesListCmd, machinesGetCmd, machinesUpdateCmd)

	machinesUpdateCmd.Flags().String("status", "", "New status (Running, Idle or Stopped)")
	machinesUpdateCmd.Flags().Float64("energy", 0, "New energy consumption in kWh")
}
