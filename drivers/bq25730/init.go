package bq25730

// Init programs the charger from Config in a fixed order:
//
//  1. ChargeOption0 (blind write or read-modify-write of EN_IIN_DPM),
//  2. IIN_HOST,
//  3. VSYS_MIN,
//  4. clear the ChargerStatus fault latches.
//
// The first failing step aborts the sequence. Registers written before it keep
// their new values. Calling Init is optional; every register can be set directly.
func (d *Device) Init() error {
	var err error
	if d.cfg.Init == InitBlindWrite {
		err = d.WriteChargeOption0(d.cfg.ChargeOption0)
	} else {
		err = d.UpdateChargeOption0(ChargeOption0{Lsb: Opt0EnIinDpm}, ChargeOption0{})
	}
	if err != nil {
		return err
	}
	if err := d.SetIinHost_mA(d.cfg.IinHost_mA); err != nil {
		return err
	}
	if err := d.SetVsysMin_mV(d.cfg.VsysMin_mV); err != nil {
		return err
	}
	return d.ClearFaults()
}
