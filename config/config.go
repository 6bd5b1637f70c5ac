// Package config loads a YAML description of one BQ25730 charger and maps it
// onto the driver configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bq25730-go/drivers/bq25730"
	"bq25730-go/errcode"
)

// Charger is the on-disk form of one charger instance.
type Charger struct {
	Bus     string `yaml:"bus"`     // periph bus name, e.g. "/dev/i2c-1" or "1"; empty = first bus
	Address uint16 `yaml:"address"` // 7-bit; 0 = 0x6B
	Cells   uint8  `yaml:"cells"`

	Sense Sense `yaml:"sense"`

	ADCOffset string `yaml:"adc_offset"` // "2880mv" | "none"
	Init      string `yaml:"init"`       // "read_modify_write" | "blind_write"
	ShipMode  string `yaml:"ship_mode"`  // "register_write" | "discharge_bit"

	// Values programmed by Init.
	ChargeOption0 *uint16 `yaml:"charge_option0"` // blind_write only; nil = POR word
	IinHost_mA    uint32  `yaml:"iin_host_ma"`
	VsysMin_mV    uint32  `yaml:"vsys_min_mv"` // 0 = per-cell default

	// Optional settings applied after Init; zero leaves the register alone.
	Charge Charge `yaml:"charge"`
}

// Sense holds the shunt values in milliohms (5 or 10).
type Sense struct {
	Input_mOhm   uint32 `yaml:"input_mohm"`
	Battery_mOhm uint32 `yaml:"battery_mohm"`
}

type Charge struct {
	Current_mA      uint32 `yaml:"current_ma"`
	Voltage_mV      uint32 `yaml:"voltage_mv"`
	InputVoltage_mV uint32 `yaml:"input_voltage_mv"`
	Watchdog        string `yaml:"watchdog"` // "", "disabled", "5s", "88s", "175s"
}

// Default returns the POR-equivalent 1S description.
func Default() *Charger {
	d := bq25730.DefaultConfig()
	return &Charger{
		Address:    d.Address,
		Cells:      d.Cells,
		Sense:      Sense{Input_mOhm: 10, Battery_mOhm: 10},
		ADCOffset:  "2880mv",
		Init:       "read_modify_write",
		ShipMode:   "register_write",
		IinHost_mA: d.IinHost_mA,
	}
}

// Load reads a charger description from YAML and fills unset fields.
func Load(path string) (*Charger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes. Unknown keys are rejected.
func Parse(data []byte) (*Charger, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(c)
	return c, nil
}

func applyDefaults(c *Charger) {
	d := Default()
	if c.Address == 0 {
		c.Address = d.Address
	}
	if c.Sense.Input_mOhm == 0 {
		c.Sense.Input_mOhm = d.Sense.Input_mOhm
	}
	if c.Sense.Battery_mOhm == 0 {
		c.Sense.Battery_mOhm = d.Sense.Battery_mOhm
	}
	if c.ADCOffset == "" {
		c.ADCOffset = d.ADCOffset
	}
	if c.Init == "" {
		c.Init = d.Init
	}
	if c.ShipMode == "" {
		c.ShipMode = d.ShipMode
	}
	if c.IinHost_mA == 0 {
		c.IinHost_mA = d.IinHost_mA
	}
	if c.VsysMin_mV == 0 {
		c.VsysMin_mV = bq25730.DefaultVsysMin_mV(c.Cells)
	}
}

func invalid(field, val string) error {
	return &errcode.E{C: errcode.InvalidArgument, Op: "config", Msg: fmt.Sprintf("%s: unknown value %q", field, val)}
}

func sense(field string, mOhm uint32) (bq25730.SenseResistor, error) {
	switch mOhm {
	case 10:
		return bq25730.Sense10mOhm, nil
	case 5:
		return bq25730.Sense5mOhm, nil
	}
	return 0, invalid(field, fmt.Sprint(mOhm))
}

// Driver converts the description into a validated bq25730.Config.
func (c *Charger) Driver() (bq25730.Config, error) {
	out := bq25730.DefaultConfig()
	out.Address = c.Address
	out.Cells = c.Cells
	out.IinHost_mA = c.IinHost_mA
	out.VsysMin_mV = c.VsysMin_mV
	if c.ChargeOption0 != nil {
		out.ChargeOption0 = bq25730.FlagsFromWord[bq25730.ChargeOption0Lsb, bq25730.ChargeOption0Msb](*c.ChargeOption0)
	}

	var err error
	if out.RsnsAC, err = sense("sense.input_mohm", c.Sense.Input_mOhm); err != nil {
		return out, err
	}
	if out.RsnsBat, err = sense("sense.battery_mohm", c.Sense.Battery_mOhm); err != nil {
		return out, err
	}

	switch c.ADCOffset {
	case "2880mv":
		out.ADCOffset = bq25730.ADCOffset2880mV
	case "none":
		out.ADCOffset = bq25730.ADCOffsetNone
	default:
		return out, invalid("adc_offset", c.ADCOffset)
	}

	switch c.Init {
	case "read_modify_write":
		out.Init = bq25730.InitReadModifyWrite
	case "blind_write":
		out.Init = bq25730.InitBlindWrite
	default:
		return out, invalid("init", c.Init)
	}

	switch c.ShipMode {
	case "register_write":
		out.ShipMode = bq25730.ShipModeRegisterWrite
	case "discharge_bit":
		out.ShipMode = bq25730.ShipModeDischargeBit
	default:
		return out, invalid("ship_mode", c.ShipMode)
	}

	return out, out.Validate()
}

// Watchdog parses Charge.Watchdog. ok is false when the field is empty.
func (c *Charger) Watchdog() (w bq25730.WatchdogTimer, ok bool, err error) {
	switch c.Charge.Watchdog {
	case "":
		return 0, false, nil
	case "disabled":
		return bq25730.WatchdogDisabled, true, nil
	case "5s":
		return bq25730.Watchdog5s, true, nil
	case "88s":
		return bq25730.Watchdog88s, true, nil
	case "175s":
		return bq25730.Watchdog175s, true, nil
	}
	return 0, false, invalid("charge.watchdog", c.Charge.Watchdog)
}
