package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bq25730-go/drivers/bq25730"
)

var initProbe bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Program the charger from the configuration",
	Long: `Writes the sense-resistor selection, runs the driver init sequence
(ChargeOption0, IIN_HOST, VSYS_MIN, fault clear) and then applies the optional
charge settings from the config file.`,
	RunE: runInit,
}

func init() {
	deviceCommand(initCmd)
	initCmd.Flags().BoolVar(&initProbe, "probe", true, "check the manufacturer ID first")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initProbe {
		if err := dev.Probe(); err != nil {
			return err
		}
	}
	if err := dev.ApplySenseResistors(); err != nil {
		return fmt.Errorf("sense resistors: %w", err)
	}
	if err := dev.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	opt := []struct {
		q bq25730.Quantity
		v uint32
	}{
		{bq25730.ChargeVoltage, charger.Charge.Voltage_mV},
		{bq25730.InputVoltage, charger.Charge.InputVoltage_mV},
		{bq25730.ChargeCurrent, charger.Charge.Current_mA},
	}
	for _, o := range opt {
		if o.v == 0 {
			continue
		}
		if err := dev.Write(o.q, o.v); err != nil {
			return fmt.Errorf("%v: %w", o.q, err)
		}
		logger.Printf("%v = %d", o.q, o.v)
	}

	w, ok, err := charger.Watchdog()
	if err != nil {
		return err
	}
	if ok {
		if err := dev.SetWatchdog(w); err != nil {
			return fmt.Errorf("watchdog: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
