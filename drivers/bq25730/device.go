// Package bq25730 provides a minimal TinyGo-friendly driver for the TI BQ25730
// I2C buck-boost battery charge controller.
//
// Design notes (datasheet references):
// • I2C, fixed 7-bit address 0x6B; word registers are LSB/MSB pairs, LSB first.
// • Integer-only scaling; every scaled field is described once in the codec table.
// • Current-domain steps follow the configured sense resistors (10 mΩ / 5 mΩ).
// • No register cache: every getter re-reads the chip.
// • Errors are errcode values: transport, invalid_argument, invalid_data.
package bq25730

import (
	"bq25730-go/errcode"

	"tinygo.org/x/drivers"
)

// InitStrategy selects how Init programs ChargeOption0.
type InitStrategy uint8

const (
	// InitReadModifyWrite reads ChargeOption0, sets EN_IIN_DPM and writes it back.
	InitReadModifyWrite InitStrategy = iota
	// InitBlindWrite writes Config.ChargeOption0 as-is.
	InitBlindWrite
)

// ShipModeStrategy selects the sequence EnterShipMode issues. The two chip
// generations disagree; neither is assumed correct for every board.
type ShipModeStrategy uint8

const (
	// ShipModeRegisterWrite writes 0x0013 to the ship-mode register pair.
	ShipModeRegisterWrite ShipModeStrategy = iota
	// ShipModeDischargeBit sets EN_SHIP_DCHG in ChargeOption1, preserving other bits.
	ShipModeDischargeBit
)

// DefaultChargeOption0 is the POR value of ChargeOption0 (0xE70E).
var DefaultChargeOption0 = ChargeOption0{
	Lsb: Opt0IbatGain | Opt0EnLDO | Opt0EnIinDpm,
	Msb: Opt0EnLowPower | ChargeOption0Msb(0).WithWatchdog(Watchdog175s) | Opt0EnOOA | Opt0PwmFreq800k | Opt0LowPtmRipple,
}

// Driver configuration. Integer-only; held by the process, not the chip.
type Config struct {
	Address uint16
	Cells   uint8 // advisory, 1..5; 0 = unknown

	RsnsAC  SenseResistor // input path (IIN, OTG current)
	RsnsBat SenseResistor // battery path (charge/discharge current)

	ADCOffset ADCOffset
	Init      InitStrategy
	ShipMode  ShipModeStrategy

	// Values programmed by Init.
	ChargeOption0 ChargeOption0 // used by InitBlindWrite only
	IinHost_mA    uint32        // 0 => 3200 mA
	VsysMin_mV    uint32        // 0 => per-cell POR default
}

// DefaultConfig provides POR-equivalent defaults for a 1S pack.
func DefaultConfig() Config {
	return Config{
		Address:       AddressDefault,
		Cells:         1,
		ChargeOption0: DefaultChargeOption0,
		IinHost_mA:    3200,
		VsysMin_mV:    DefaultVsysMin_mV(1),
	}
}

// DefaultVsysMin_mV returns the VSYS_MIN the chip selects for a cell count.
func DefaultVsysMin_mV(cells uint8) uint32 {
	switch cells {
	case 2:
		return 6600
	case 3:
		return 9200
	case 4:
		return 12300
	case 5:
		return 15400
	default:
		return 3600
	}
}

var (
	errAddress  = &errcode.E{C: errcode.InvalidArgument, Op: "bq25730: config", Msg: "address must be 7-bit"}
	errCells    = &errcode.E{C: errcode.InvalidArgument, Op: "bq25730: config", Msg: "cells must be 0..5"}
	errStrategy = &errcode.E{C: errcode.InvalidArgument, Op: "bq25730: config", Msg: "unknown enum value"}
)

// Validate checks the address, enum ranges and the advisory cell count.
func (c Config) Validate() error {
	if c.Address > 0x7F {
		return errAddress
	}
	if c.Cells > 5 {
		return errCells
	}
	if c.RsnsAC > Sense5mOhm || c.RsnsBat > Sense5mOhm || c.ADCOffset > ADCOffsetNone ||
		c.Init > InitBlindWrite || c.ShipMode > ShipModeDischargeBit {
		return errStrategy
	}
	return nil
}

// Device represents a BQ25730 on an I2C bus. It is single-owner: callers
// serialise access.
type Device struct {
	i2c   drivers.I2C
	addr  uint16
	cfg   Config
	codec Codec

	// Fixed buffers to avoid per-call heap allocations.
	w [MaxTransfer + 1]byte
	r [MaxTransfer]byte
}

// New constructs a Device with supplied config. It does not touch the bus and
// does not validate cfg: unknown sense-resistor values scale as 10 mΩ. Call
// cfg.Validate first, or use Configure, when cfg comes from outside.
func New(i2c drivers.I2C, cfg Config) *Device {
	d := &Device{i2c: i2c}
	d.apply(cfg)
	return d
}

// Configure replaces the process-held parameters. Chip registers are not
// written; call Init or ApplySenseResistors for that.
func (d *Device) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	d.apply(cfg)
	return nil
}

func (d *Device) apply(cfg Config) {
	if cfg.Address == 0 {
		cfg.Address = AddressDefault
	}
	if cfg.IinHost_mA == 0 {
		cfg.IinHost_mA = DefaultConfig().IinHost_mA
	}
	if cfg.VsysMin_mV == 0 {
		cfg.VsysMin_mV = DefaultVsysMin_mV(cfg.Cells)
	}
	d.addr = cfg.Address
	d.cfg = cfg
	d.codec = NewCodec(cfg)
}

// Introspection.
func (d *Device) Config() Config  { return d.cfg }
func (d *Device) Codec() Codec    { return d.codec }
func (d *Device) Address() uint16 { return d.addr }
