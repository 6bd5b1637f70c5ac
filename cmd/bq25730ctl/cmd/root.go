package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c"

	"bq25730-go/config"
	"bq25730-go/drivers/bq25730"
	"bq25730-go/internal/i2cshim"
)

var (
	// Global flags
	busName    string
	configPath string
	address    uint16
	verbose    bool

	// Set up by openDevice for the running subcommand.
	charger *config.Charger
	bus     i2c.BusCloser
	dev     *bq25730.Device

	logger = log.New(os.Stderr, "bq25730ctl: ", log.LstdFlags)
)

var rootCmd = &cobra.Command{
	Use:   "bq25730ctl",
	Short: "BQ25730 charger register tool",
	Long: `Talks to a TI BQ25730 buck-boost charger over a Linux I2C bus.

Examples:
  bq25730ctl --bus /dev/i2c-1 status                 # Charger and PROCHOT status
  bq25730ctl --config charger.yaml init              # Program the charger from YAML
  bq25730ctl adc --start                             # One-shot conversion, then read
  bq25730ctl set charge_current 1024                 # Scaled write, reads back
  bq25730ctl dump                                    # Hex dump of 0x00..0x41`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&busName, "bus", "", "I2C bus name (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "charger YAML file")
	rootCmd.PersistentFlags().Uint16Var(&address, "addr", 0, "7-bit device address (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every I2C transaction")
}

// openDevice loads the charger description, opens the bus and builds the
// driver. Subcommands that touch the chip use it as PreRunE.
func openDevice(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		if charger, err = config.Load(configPath); err != nil {
			return err
		}
	} else if charger, err = config.Parse(nil); err != nil {
		return err
	}
	if cmd.Flags().Changed("bus") {
		charger.Bus = busName
	}
	if cmd.Flags().Changed("addr") {
		charger.Address = address
	}

	cfg, err := charger.Driver()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if bus, err = i2cshim.Open(charger.Bus); err != nil {
		return fmt.Errorf("open bus %q: %w", charger.Bus, err)
	}
	shim := i2cshim.New(bus)
	if verbose {
		shim = shim.WithTrace(logger)
	}
	dev = bq25730.New(shim, cfg)
	return nil
}

func closeDevice(cmd *cobra.Command, args []string) error {
	if bus == nil {
		return nil
	}
	err := bus.Close()
	bus = nil
	return err
}

// deviceCommand wires the open/close hooks into a subcommand.
func deviceCommand(c *cobra.Command) *cobra.Command {
	c.PreRunE = openDevice
	c.PostRunE = closeDevice
	rootCmd.AddCommand(c)
	return c
}
