package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bq25730-go/drivers/bq25730"
)

var setCmd = &cobra.Command{
	Use:   "set <quantity> <value>",
	Short: "Write a scaled setting (mA or mV) and read it back",
	Long: `Quantities: charge_current, charge_voltage, otg_voltage, otg_current,
input_voltage, vsys_min, iin_host, iin_dpm. Values are truncated to the
register step and saturate at the field limits.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var getCmd = &cobra.Command{
	Use:   "get <quantity>...",
	Short: "Read scaled settings or ADC channels",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGet,
}

func init() {
	deviceCommand(setCmd)
	deviceCommand(getCmd)
}

func parseQuantity(s string) (bq25730.Quantity, error) {
	q, ok := bq25730.ParseQuantity(strings.ToLower(s))
	if !ok {
		return 0, fmt.Errorf("unknown quantity %q", s)
	}
	return q, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	q, err := parseQuantity(args[0])
	if err != nil {
		return err
	}
	if strings.HasPrefix(q.String(), "adc_") {
		return fmt.Errorf("%v is read-only", q)
	}
	v, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	if err := dev.Write(q, uint32(v)); err != nil {
		return err
	}
	got, err := dev.Read(q)
	if err != nil {
		return err
	}
	if got != uint32(v) {
		logger.Printf("%v: requested %d, chip holds %d", q, v, got)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v=%d\n", q, got)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		q, err := parseQuantity(a)
		if err != nil {
			return err
		}
		v, err := dev.Read(q)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v=%d\n", q, v)
	}
	return nil
}
