package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"bq25730-go/drivers/bq25730"
)

var (
	adcStart      bool
	adcContinuous bool
	adcWait       time.Duration
	adcInterval   time.Duration
	adcCount      int
)

var adcCmd = &cobra.Command{
	Use:   "adc",
	Short: "Read the eight ADC channels",
	Long: `Reads ADCPSYS..ADCVSYS in one transaction and prints scaled values.
With --start a conversion on all channels is triggered first.`,
	RunE: runADC,
}

func init() {
	deviceCommand(adcCmd)
	f := adcCmd.Flags()
	f.BoolVar(&adcStart, "start", false, "start a conversion on all channels before reading")
	f.BoolVar(&adcContinuous, "continuous", false, "with --start, leave the ADC converting")
	f.DurationVar(&adcWait, "wait", 50*time.Millisecond, "delay between --start and the first read")
	f.DurationVar(&adcInterval, "interval", time.Second, "delay between repeated reads")
	f.IntVarP(&adcCount, "count", "n", 1, "number of reads (0 = forever)")
}

func runADC(cmd *cobra.Command, args []string) error {
	if adcStart {
		if err := dev.StartADC(adcContinuous, bq25730.ADCEnAll); err != nil {
			return err
		}
		time.Sleep(adcWait)
	}
	for i := 0; adcCount == 0 || i < adcCount; i++ {
		if i > 0 {
			time.Sleep(adcInterval)
		}
		m, err := dev.ReadADC()
		if err != nil {
			return err
		}
		printADC(cmd.OutOrStdout(), m)
	}
	return nil
}

func printADC(w io.Writer, m bq25730.ADCMeasurements) {
	fmt.Fprintf(w, "vbus=%dmV vsys=%dmV vbat=%dmV ichg=%dmA idchg=%dmA iin=%dmA psys=%dmV cmpin=%dmV\n",
		m.Vbus_mV, m.Vsys_mV, m.Vbat_mV, m.Ichg_mA, m.Idchg_mA, m.Iin_mA, m.Psys_mV, m.Cmpin_mV)
}
