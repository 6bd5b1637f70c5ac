package bq25730

// Flags is a two-byte flag register: Lsb at the lower address, Msb above it.
type Flags[L, M ~uint8] struct {
	Lsb L
	Msb M
}

// Word returns the register pair as MSB<<8 | LSB.
func (f Flags[L, M]) Word() uint16 { return uint16(f.Lsb) | uint16(f.Msb)<<8 }

// FlagsFromWord splits w into a Flags value.
func FlagsFromWord[L, M ~uint8](w uint16) Flags[L, M] {
	return Flags[L, M]{Lsb: L(w), Msb: M(w >> 8)}
}

type (
	ChargeOption0     = Flags[ChargeOption0Lsb, ChargeOption0Msb]
	ChargeOption1     = Flags[ChargeOption1Lsb, ChargeOption1Msb]
	ChargeOption2     = Flags[ChargeOption2Lsb, ChargeOption2Msb]
	ChargeOption3     = Flags[ChargeOption3Lsb, ChargeOption3Msb]
	ChargeOption4     = Flags[ChargeOption4Lsb, ChargeOption4Msb]
	ProchotOption0    = Flags[ProchotOption0Lsb, ProchotOption0Msb]
	ProchotOption1    = Flags[ProchotOption1Lsb, ProchotOption1Msb]
	ADCOption         = Flags[ADCOptionLsb, ADCOptionMsb]
	VminActiveProtect = Flags[VminActiveProtectLsb, VminActiveProtectMsb]
)

// ---------------- Generic flag register access ----------------

func readFlags[L, M ~uint8](d *Device, reg Register) (Flags[L, M], error) {
	lsb, msb, err := d.readPair(reg)
	if err != nil {
		return Flags[L, M]{}, err
	}
	return Flags[L, M]{Lsb: L(lsb), Msb: M(msb)}, nil
}

func writeFlags[L, M ~uint8](d *Device, reg Register, f Flags[L, M]) error {
	return d.writePair(reg, byte(f.Lsb), byte(f.Msb))
}

// updateFlags is the read-modify-write pattern: bits in set are raised, bits in
// clear are dropped, everything else is written back as read.
func updateFlags[L, M ~uint8](d *Device, reg Register, set, clear Flags[L, M]) error {
	cur, err := readFlags[L, M](d, reg)
	if err != nil {
		return err
	}
	cur.Lsb = (cur.Lsb | set.Lsb) &^ clear.Lsb
	cur.Msb = (cur.Msb | set.Msb) &^ clear.Msb
	return writeFlags(d, reg, cur)
}

// ---------------- ChargeOption0..4 ----------------

func (d *Device) ChargeOption0() (ChargeOption0, error) {
	return readFlags[ChargeOption0Lsb, ChargeOption0Msb](d, RegChargeOption0)
}
func (d *Device) WriteChargeOption0(v ChargeOption0) error {
	return writeFlags(d, RegChargeOption0, v)
}
func (d *Device) UpdateChargeOption0(set, clear ChargeOption0) error {
	return updateFlags(d, RegChargeOption0, set, clear)
}

func (d *Device) ChargeOption1() (ChargeOption1, error) {
	return readFlags[ChargeOption1Lsb, ChargeOption1Msb](d, RegChargeOption1)
}
func (d *Device) WriteChargeOption1(v ChargeOption1) error {
	return writeFlags(d, RegChargeOption1, v)
}
func (d *Device) UpdateChargeOption1(set, clear ChargeOption1) error {
	return updateFlags(d, RegChargeOption1, set, clear)
}

func (d *Device) ChargeOption2() (ChargeOption2, error) {
	return readFlags[ChargeOption2Lsb, ChargeOption2Msb](d, RegChargeOption2)
}
func (d *Device) WriteChargeOption2(v ChargeOption2) error {
	return writeFlags(d, RegChargeOption2, v)
}
func (d *Device) UpdateChargeOption2(set, clear ChargeOption2) error {
	return updateFlags(d, RegChargeOption2, set, clear)
}

func (d *Device) ChargeOption3() (ChargeOption3, error) {
	return readFlags[ChargeOption3Lsb, ChargeOption3Msb](d, RegChargeOption3)
}
func (d *Device) WriteChargeOption3(v ChargeOption3) error {
	return writeFlags(d, RegChargeOption3, v)
}
func (d *Device) UpdateChargeOption3(set, clear ChargeOption3) error {
	return updateFlags(d, RegChargeOption3, set, clear)
}

func (d *Device) ChargeOption4() (ChargeOption4, error) {
	return readFlags[ChargeOption4Lsb, ChargeOption4Msb](d, RegChargeOption4)
}
func (d *Device) WriteChargeOption4(v ChargeOption4) error {
	return writeFlags(d, RegChargeOption4, v)
}
func (d *Device) UpdateChargeOption4(set, clear ChargeOption4) error {
	return updateFlags(d, RegChargeOption4, set, clear)
}

// ---------------- ProchotOption0..1 ----------------

func (d *Device) ProchotOption0() (ProchotOption0, error) {
	return readFlags[ProchotOption0Lsb, ProchotOption0Msb](d, RegProchotOption0)
}
func (d *Device) WriteProchotOption0(v ProchotOption0) error {
	return writeFlags(d, RegProchotOption0, v)
}
func (d *Device) UpdateProchotOption0(set, clear ProchotOption0) error {
	return updateFlags(d, RegProchotOption0, set, clear)
}

func (d *Device) ProchotOption1() (ProchotOption1, error) {
	return readFlags[ProchotOption1Lsb, ProchotOption1Msb](d, RegProchotOption1)
}
func (d *Device) WriteProchotOption1(v ProchotOption1) error {
	return writeFlags(d, RegProchotOption1, v)
}
func (d *Device) UpdateProchotOption1(set, clear ProchotOption1) error {
	return updateFlags(d, RegProchotOption1, set, clear)
}

// ---------------- ADCOption / VMIN active protection ----------------

func (d *Device) ADCOption() (ADCOption, error) {
	return readFlags[ADCOptionLsb, ADCOptionMsb](d, RegADCOption)
}
func (d *Device) WriteADCOption(v ADCOption) error {
	return writeFlags(d, RegADCOption, v)
}
func (d *Device) UpdateADCOption(set, clear ADCOption) error {
	return updateFlags(d, RegADCOption, set, clear)
}

func (d *Device) VminActiveProtect() (VminActiveProtect, error) {
	return readFlags[VminActiveProtectLsb, VminActiveProtectMsb](d, RegVminActiveProtect)
}
func (d *Device) WriteVminActiveProtect(v VminActiveProtect) error {
	return writeFlags(d, RegVminActiveProtect, v)
}
func (d *Device) UpdateVminActiveProtect(set, clear VminActiveProtect) error {
	return updateFlags(d, RegVminActiveProtect, set, clear)
}

// ---------------- Field helpers built on the blocks ----------------

// SetWatchdog programs WDTMR_ADJ, preserving the rest of ChargeOption0.
func (d *Device) SetWatchdog(w WatchdogTimer) error {
	cur, err := d.ChargeOption0()
	if err != nil {
		return err
	}
	cur.Msb = cur.Msb.WithWatchdog(w)
	return d.WriteChargeOption0(cur)
}

// ApplySenseResistors writes RSNS_RAC/RSNS_RSR in ChargeOption1 to match the
// configured resistors so that the chip and the codec agree on scaling.
func (d *Device) ApplySenseResistors() error {
	var set, clear ChargeOption1
	if d.cfg.RsnsAC == Sense5mOhm {
		set.Msb |= Opt1RsnsRAC
	} else {
		clear.Msb |= Opt1RsnsRAC
	}
	if d.cfg.RsnsBat == Sense5mOhm {
		set.Msb |= Opt1RsnsRSR
	} else {
		clear.Msb |= Opt1RsnsRSR
	}
	return d.UpdateChargeOption1(set, clear)
}
