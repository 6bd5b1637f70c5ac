package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var shipConfirm bool

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Put the charger into ship mode",
	Long: `Issues the ship-mode sequence selected by ship_mode in the config
(register_write or discharge_bit). The system rail drops once the chip enters
ship mode; --yes is required.`,
	RunE: runShip,
}

func init() {
	deviceCommand(shipCmd)
	shipCmd.Flags().BoolVar(&shipConfirm, "yes", false, "confirm entering ship mode")
}

func runShip(cmd *cobra.Command, args []string) error {
	if !shipConfirm {
		return errors.New("refusing to enter ship mode without --yes")
	}
	if err := dev.EnterShipMode(); err != nil {
		return err
	}
	logger.Printf("ship mode requested (%s)", charger.ShipMode)
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
