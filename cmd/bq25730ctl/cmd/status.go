package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bq25730-go/drivers/bq25730"
)

var (
	statusClear bool
	statusYAML  bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show charger status, faults and PROCHOT state",
	RunE:  runStatus,
}

func init() {
	deviceCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusClear, "clear", false, "clear fault latches after reading")
	statusCmd.Flags().BoolVar(&statusYAML, "yaml", false, "print a full snapshot as YAML")
}

type named[T ~uint8] struct {
	bit  T
	name string
}

var statusNames = []named[bq25730.ChargerStatusMsb]{
	{bq25730.StatAC, "ac"},
	{bq25730.StatICODone, "ico_done"},
	{bq25730.StatInVAP, "in_vap"},
	{bq25730.StatInVindpm, "in_vindpm"},
	{bq25730.StatInIinDpm, "in_iin_dpm"},
	{bq25730.StatInFastCharge, "fast_charge"},
	{bq25730.StatInPreCharge, "pre_charge"},
	{bq25730.StatInOTG, "otg"},
}

var faultNames = []named[bq25730.ChargerStatusLsb]{
	{bq25730.FaultACOV, "acov"},
	{bq25730.FaultBATOC, "batoc"},
	{bq25730.FaultACOC, "acoc"},
	{bq25730.FaultSYSOVP, "sysovp"},
	{bq25730.FaultVsysUVP, "vsys_uvp"},
	{bq25730.FaultForceConvOff, "force_conv_off"},
	{bq25730.FaultOtgOVP, "otg_ovp"},
	{bq25730.FaultOtgUVP, "otg_uvp"},
}

var prochotNames = []named[bq25730.ProchotStatusLsb]{
	{bq25730.ProchotStatVindpm, "vindpm"},
	{bq25730.ProchotStatComp, "comp"},
	{bq25730.ProchotStatIcrit, "icrit"},
	{bq25730.ProchotStatInom, "inom"},
	{bq25730.ProchotStatIdchg1, "idchg1"},
	{bq25730.ProchotStatVsys, "vsys"},
	{bq25730.ProchotStatBatRemoval, "bat_removal"},
	{bq25730.ProchotStatAdptRemoval, "adpt_removal"},
}

var prochotCtlNames = []named[bq25730.ProchotStatusMsb]{
	{bq25730.ProchotExtEn, "ext_en"},
	{bq25730.ProchotClear, "clear"},
	{bq25730.ProchotStatVapFail, "vap_fail"},
	{bq25730.ProchotStatExitVap, "exit_vap"},
}

// flagList names the set bits of v, or "-" when none are set.
func flagList[T ~uint8](v T, names []named[T]) string {
	var out []string
	for _, n := range names {
		if v&n.bit != 0 {
			out = append(out, n.name)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func runStatus(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if statusYAML {
		return writeSnapshotYAML(w, dev.Snapshot())
	}

	cs, err := dev.ReadChargerStatus()
	if err != nil {
		return err
	}
	ps, err := dev.ReadProchotStatus()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "status:  %s\n", flagList(cs.Status, statusNames))
	fmt.Fprintf(w, "faults:  %s\n", flagList(cs.Faults, faultNames))
	fmt.Fprintf(w, "prochot: %s idchg2=%t ptm=%t\n",
		flagList(ps.Stat, prochotNames), ps.Idchg2, ps.PTM)
	fmt.Fprintf(w, "prochot_ctl: %s width=%d\n",
		flagList(ps.Control, prochotCtlNames), ps.Control.Width())

	if statusClear && cs.HasFault() {
		if err := dev.ClearFaults(); err != nil {
			return err
		}
		logger.Printf("cleared faults %s", flagList(cs.Faults, faultNames))
	}
	return nil
}

// snapshotDoc is the YAML shape of a bq25730.Snapshot.
type snapshotDoc struct {
	Status  []string          `yaml:"status"`
	Faults  []string          `yaml:"faults"`
	Prochot []string          `yaml:"prochot"`
	ADC     map[string]uint32 `yaml:"adc"`
	Setting map[string]uint32 `yaml:"settings"`
}

func split(s string) []string {
	if s == "-" {
		return nil
	}
	return strings.Split(s, ",")
}

func writeSnapshotYAML(w io.Writer, s bq25730.Snapshot) error {
	doc := snapshotDoc{
		Status:  split(flagList(s.Charger.Status, statusNames)),
		Faults:  split(flagList(s.Charger.Faults, faultNames)),
		Prochot: split(flagList(s.Prochot.Stat, prochotNames)),
		ADC: map[string]uint32{
			"psys_mv":  s.ADC.Psys_mV,
			"vbus_mv":  s.ADC.Vbus_mV,
			"idchg_ma": s.ADC.Idchg_mA,
			"ichg_ma":  s.ADC.Ichg_mA,
			"cmpin_mv": s.ADC.Cmpin_mV,
			"iin_ma":   s.ADC.Iin_mA,
			"vbat_mv":  s.ADC.Vbat_mV,
			"vsys_mv":  s.ADC.Vsys_mV,
		},
		Setting: map[string]uint32{
			"charge_current_ma": s.ChargeCurrent_mA,
			"charge_voltage_mv": s.ChargeVoltage_mV,
			"iin_host_ma":       s.IinHost_mA,
			"iin_dpm_ma":        s.IinDpm_mA,
			"vsys_min_mv":       s.VsysMin_mV,
		},
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
