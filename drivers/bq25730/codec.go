package bq25730

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"bq25730-go/errcode"
)

// Quantity names one scaled register field.
type Quantity uint8

const (
	ChargeCurrent Quantity = iota
	ChargeVoltage
	OTGVoltage
	OTGCurrent
	InputVoltage
	VsysMin
	IinHost
	IinDpm
	ADCPsys
	ADCVbus
	ADCIdchg
	ADCIchg
	ADCCmpin
	ADCIin
	ADCVbat
	ADCVsys

	numQuantities
)

var quantityNames = [numQuantities]string{
	"charge_current", "charge_voltage", "otg_voltage", "otg_current",
	"input_voltage", "vsys_min", "iin_host", "iin_dpm",
	"adc_psys", "adc_vbus", "adc_idchg", "adc_ichg",
	"adc_cmpin", "adc_iin", "adc_vbat", "adc_vsys",
}

func (q Quantity) String() string {
	if q >= numQuantities {
		return "unknown"
	}
	return quantityNames[q]
}

func (q Quantity) valid() bool { return q < numQuantities }

// ParseQuantity is the inverse of Quantity.String.
func ParseQuantity(name string) (Quantity, bool) {
	for i, n := range quantityNames {
		if n == name {
			return Quantity(i), true
		}
	}
	return 0, false
}

// SenseResistor selects a current-sense shunt value. The zero value is the
// 10 mΩ reference at which all current steps below are quoted.
type SenseResistor uint8

const (
	Sense10mOhm SenseResistor = iota
	Sense5mOhm
)

const refSense_uOhm = 10_000

func (r SenseResistor) MicroOhm() uint32 {
	if r == Sense5mOhm {
		return 5_000
	}
	return refSense_uOhm
}

// ADCOffset selects the base added to the ADCVBAT/ADCVSYS codes.
type ADCOffset uint8

const (
	ADCOffset2880mV ADCOffset = iota // ADC full range 2.88 V..19.2 V
	ADCOffsetNone
)

const adcVbatBase_mV = 2880

type senseDomain uint8

const (
	senseNone senseDomain = iota
	senseInput
	senseBattery
)

// bitRange selects bits of one register byte: value = (b & mask) >> shift.
type bitRange struct {
	mask  byte
	shift uint8
}

func (r bitRange) width() int { return bits.OnesCount8(r.mask) }

// layout describes where a quantity lives and how its code maps to units.
// Steps and offsets are quoted at the 10 mΩ reference for current fields.
type layout struct {
	reg     Register
	width   uint8    // bytes on the wire: 1 or 2
	lo, hi  bitRange // lo from the LSB byte, hi from the MSB byte (2-byte only)
	step    uint32
	offset  uint32
	sense   senseDomain
	adcBase bool // offset comes from Config.ADCOffset
}

var layouts = [numQuantities]layout{
	// 13-bit: MSB 4:0 high, LSB 7:0 low. 64 mA/LSB.
	ChargeCurrent: {reg: RegChargeCurrent, width: 2, lo: bitRange{0xFF, 0}, hi: bitRange{0x1F, 0}, step: 64, sense: senseBattery},
	// 12-bit: MSB 7:0 = code 11:4, LSB 7:4 = code 3:0. 8 mV/LSB + 1024 mV.
	ChargeVoltage: {reg: RegChargeVoltage, width: 2, lo: bitRange{0xF0, 4}, hi: bitRange{0xFF, 0}, step: 8, offset: 1024},
	// 11-bit: MSB 2:0 high. 8 mV/LSB + 3000 mV.
	OTGVoltage: {reg: RegOTGVoltage, width: 2, lo: bitRange{0xFF, 0}, hi: bitRange{0x07, 0}, step: 8, offset: 3000},
	// 10-bit: MSB 1:0 high. 100 mA/LSB.
	OTGCurrent: {reg: RegOTGCurrent, width: 2, lo: bitRange{0xFF, 0}, hi: bitRange{0x03, 0}, step: 100, sense: senseInput},
	// 9-bit: MSB bit 7 is code bit 8. 64 mV/LSB + 3200 mV.
	InputVoltage: {reg: RegInputVoltage, width: 2, lo: bitRange{0xFF, 0}, hi: bitRange{0x80, 7}, step: 64, offset: 3200},
	VsysMin:      {reg: RegVsysMin, width: 1, lo: bitRange{0xFF, 0}, step: 100},
	IinHost:      {reg: RegIinHost, width: 1, lo: bitRange{0x7F, 0}, step: 50, offset: 50, sense: senseInput},
	IinDpm:       {reg: RegIinDpm, width: 1, lo: bitRange{0x7F, 0}, step: 50, offset: 50, sense: senseInput},

	ADCPsys:  {reg: RegADCPSYS, width: 1, lo: bitRange{0xFF, 0}, step: 12},
	ADCVbus:  {reg: RegADCVBUS, width: 1, lo: bitRange{0xFF, 0}, step: 96},
	ADCIdchg: {reg: RegADCIDCHG, width: 1, lo: bitRange{0xFF, 0}, step: 256, sense: senseBattery},
	ADCIchg:  {reg: RegADCICHG, width: 1, lo: bitRange{0xFF, 0}, step: 64, sense: senseBattery},
	ADCCmpin: {reg: RegADCCMPIN, width: 1, lo: bitRange{0xFF, 0}, step: 12},
	ADCIin:   {reg: RegADCIIN, width: 1, lo: bitRange{0xFF, 0}, step: 50, sense: senseInput},
	ADCVbat:  {reg: RegADCVBAT, width: 1, lo: bitRange{0xFF, 0}, step: 64, adcBase: true},
	ADCVsys:  {reg: RegADCVSYS, width: 1, lo: bitRange{0xFF, 0}, step: 64, adcBase: true},
}

func (l *layout) codeBits() int {
	n := l.lo.width()
	if l.width == 2 {
		n += l.hi.width()
	}
	return n
}

// Codec converts between engineering units and register bytes under one
// sense-resistor / ADC-offset configuration. The zero value uses 10 mΩ on both
// paths and the 2880 mV ADC base.
type Codec struct {
	rsnsAC  SenseResistor
	rsnsBat SenseResistor
	adcOff  ADCOffset
}

// NewCodec derives the scaling from cfg.
func NewCodec(cfg Config) Codec {
	return Codec{rsnsAC: cfg.RsnsAC, rsnsBat: cfg.RsnsBat, adcOff: cfg.ADCOffset}
}

// Register returns the first (LSB) register of q.
func (Codec) Register(q Quantity) Register {
	if !q.valid() {
		return 0
	}
	return layouts[q].reg
}

// Width returns the number of register bytes q occupies, 0 for an unknown q.
func (Codec) Width(q Quantity) int {
	if !q.valid() {
		return 0
	}
	return int(layouts[q].width)
}

// Scale returns the unit step and offset of q under this configuration.
func (c Codec) Scale(q Quantity) (step, offset uint32) {
	if !q.valid() {
		return 0, 0
	}
	l := &layouts[q]
	step, offset = l.step, l.offset
	if l.adcBase && c.adcOff == ADCOffset2880mV {
		offset = adcVbatBase_mV
	}
	var r SenseResistor
	switch l.sense {
	case senseInput:
		r = c.rsnsAC
	case senseBattery:
		r = c.rsnsBat
	default:
		return step, offset
	}
	// Halving the shunt doubles the current per code.
	step = step * refSense_uOhm / r.MicroOhm()
	offset = offset * refSense_uOhm / r.MicroOhm()
	return step, offset
}

// MaxCode returns the largest raw code q can hold.
func (Codec) MaxCode(q Quantity) uint32 {
	if !q.valid() {
		return 0
	}
	return 1<<layouts[q].codeBits() - 1
}

// Max returns the largest representable value of q.
func (c Codec) Max(q Quantity) uint32 {
	step, off := c.Scale(q)
	return c.MaxCode(q)*step + off
}

// Code extracts the raw code of q from its register bytes (LSB first).
func (Codec) Code(q Quantity, raw []byte) (uint32, error) {
	if !q.valid() {
		return 0, errQuantity
	}
	l := &layouts[q]
	if len(raw) != int(l.width) {
		return 0, errWidth
	}
	code := uint32(raw[0]&l.lo.mask) >> l.lo.shift
	if l.width == 2 {
		code |= uint32(raw[1]&l.hi.mask) >> l.hi.shift << l.lo.width()
	}
	return code, nil
}

// Decode converts register bytes (LSB first) into the unit value of q.
func (c Codec) Decode(q Quantity, raw []byte) (uint32, error) {
	code, err := c.Code(q, raw)
	if err != nil {
		return 0, err
	}
	step, off := c.Scale(q)
	return code*step + off, nil
}

// Encode converts v into register bytes, LSB first. Values are truncated to the
// step below and clamped into the representable range; reserved bits are zero.
// Only the first Width(q) bytes are meaningful; an unknown q encodes as zero.
func (c Codec) Encode(q Quantity, v uint32) [2]byte {
	if !q.valid() {
		return [2]byte{}
	}
	step, off := c.Scale(q)
	var code uint32
	if v > off {
		code = (v - off) / step
	}
	return c.pack(q, clamp(code, 0, c.MaxCode(q)))
}

func (Codec) pack(q Quantity, code uint32) [2]byte {
	l := &layouts[q]
	var out [2]byte
	out[0] = byte(code<<l.lo.shift) & l.lo.mask
	if l.width == 2 {
		out[1] = byte(code>>l.lo.width()<<l.hi.shift) & l.hi.mask
	}
	return out
}

// DecodeIinLegacy decodes an IIN_HOST/IIN_DPM byte with the fixed
// 50 mA/LSB + 50 mA scaling of earlier interface revisions, ignoring the
// configured sense resistor.
func DecodeIinLegacy(b byte) uint32 { return uint32(b&0x7F)*50 + 50 }

// EncodeIinLegacy is the inverse of DecodeIinLegacy.
func EncodeIinLegacy(mA uint32) byte {
	var code uint32
	if mA > 50 {
		code = (mA - 50) / 50
	}
	return byte(clamp[uint32](code, 0, 0x7F))
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	errWidth    = &errcode.E{C: errcode.InvalidArgument, Op: "bq25730: decode", Msg: "raw length does not match register width"}
	errQuantity = &errcode.E{C: errcode.InvalidArgument, Op: "bq25730", Msg: "unknown quantity"}
)
