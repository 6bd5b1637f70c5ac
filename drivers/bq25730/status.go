package bq25730

import "bq25730-go/errcode"

// ChargerStatus is the decoded ChargerStatus pair (0x20/0x21).
type ChargerStatus struct {
	Faults ChargerStatusLsb // latched, cleared by writing 0
	Status ChargerStatusMsb
}

// HasFault reports whether any fault latch is set.
func (s ChargerStatus) HasFault() bool { return s.Faults&FaultClearable != 0 }

// ProchotStatus merges ProchotStatus (0x22/0x23) with the two PROCHOT status
// bits that live in ChargeOption4 (STAT_IDCHG2, STAT_PTM).
type ProchotStatus struct {
	Stat    ProchotStatusLsb
	Control ProchotStatusMsb
	Idchg2  bool
	PTM     bool
}

// ReadChargerStatus reads both status bytes in one transaction.
func (d *Device) ReadChargerStatus() (ChargerStatus, error) {
	lsb, msb, err := d.readPair(RegChargerStatus)
	if err != nil {
		return ChargerStatus{}, err
	}
	return ChargerStatus{Faults: ChargerStatusLsb(lsb), Status: ChargerStatusMsb(msb)}, nil
}

// ClearFaults clears every set fault latch in ChargerStatus and writes the
// status byte back as read.
func (d *Device) ClearFaults() error {
	lsb, msb, err := d.readPair(RegChargerStatus)
	if err != nil {
		return err
	}
	return d.writePair(RegChargerStatus, byte(ChargerStatusLsb(lsb).Clear(FaultClearable)), msb)
}

// ReadProchotStatus performs two reads (ProchotStatus pair, then ChargeOption4
// LSB) and merges them.
func (d *Device) ReadProchotStatus() (ProchotStatus, error) {
	lsb, msb, err := d.readPair(RegProchotStatus)
	if err != nil {
		return ProchotStatus{}, err
	}
	aux, err := d.ReadRegister(RegChargeOption4)
	if err != nil {
		return ProchotStatus{}, err
	}
	o4 := ChargeOption4Lsb(aux)
	return ProchotStatus{
		Stat:    ProchotStatusLsb(lsb),
		Control: ProchotStatusMsb(msb),
		Idchg2:  o4.Has(Opt4StatIdchg2),
		PTM:     o4.Has(Opt4StatPTM),
	}, nil
}

// ---------------- Identification ----------------

var errNotBQ = &errcode.E{C: errcode.InvalidData, Op: "bq25730: probe", Msg: "unexpected manufacturer id"}

func (d *Device) ManufacturerID() (byte, error) { return d.ReadRegister(RegManufacturerID) }
func (d *Device) DeviceID() (byte, error)       { return d.ReadRegister(RegDeviceID) }

// Probe checks that a TI part answers at the configured address.
func (d *Device) Probe() error {
	id, err := d.ManufacturerID()
	if err != nil {
		return err
	}
	if id != ManufacturerIDTI {
		return errNotBQ
	}
	return nil
}

// ---------------- Ship mode ----------------

// EnterShipMode issues the ship-mode sequence selected by Config.ShipMode.
func (d *Device) EnterShipMode() error {
	if d.cfg.ShipMode == ShipModeDischargeBit {
		return d.EnterShipModeDischarge()
	}
	return d.EnterShipModeWrite()
}

// EnterShipModeWrite writes the fixed 0x0013 pattern to the ship-mode pair.
func (d *Device) EnterShipModeWrite() error {
	return d.writePair(RegShipMode, byte(shipModeWord), byte(shipModeWord>>8))
}

// EnterShipModeDischarge sets EN_SHIP_DCHG in ChargeOption1, preserving the
// rest of the register.
func (d *Device) EnterShipModeDischarge() error {
	return d.UpdateChargeOption1(ChargeOption1{Lsb: Opt1EnShipDchg}, ChargeOption1{})
}
