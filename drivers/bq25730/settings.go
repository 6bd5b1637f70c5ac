package bq25730

// readQuantity is read-then-decode for one scaled field.
func (d *Device) readQuantity(q Quantity) (uint32, error) {
	if !q.valid() {
		return 0, errQuantity
	}
	buf := d.r[:d.codec.Width(q)]
	if err := d.ReadRegisters(d.codec.Register(q), buf); err != nil {
		return 0, err
	}
	return d.codec.Decode(q, buf)
}

// writeQuantity is encode-then-write for one scaled field.
func (d *Device) writeQuantity(q Quantity, v uint32) error {
	if !q.valid() {
		return errQuantity
	}
	raw := d.codec.Encode(q, v)
	return d.WriteRegisters(d.codec.Register(q), raw[:d.codec.Width(q)])
}

// Read returns the current value of any scaled field.
func (d *Device) Read(q Quantity) (uint32, error) { return d.readQuantity(q) }

// Write programs any scaled field; v is truncated to the field's step.
func (d *Device) Write(q Quantity, v uint32) error { return d.writeQuantity(q, v) }

// Charge settings

func (d *Device) ChargeCurrent_mA() (uint32, error)   { return d.readQuantity(ChargeCurrent) }
func (d *Device) SetChargeCurrent_mA(mA uint32) error { return d.writeQuantity(ChargeCurrent, mA) }
func (d *Device) ChargeVoltage_mV() (uint32, error)   { return d.readQuantity(ChargeVoltage) }
func (d *Device) SetChargeVoltage_mV(mV uint32) error { return d.writeQuantity(ChargeVoltage, mV) }
func (d *Device) VsysMin_mV() (uint32, error)         { return d.readQuantity(VsysMin) }
func (d *Device) SetVsysMin_mV(mV uint32) error       { return d.writeQuantity(VsysMin, mV) }
func (d *Device) InputVoltage_mV() (uint32, error)    { return d.readQuantity(InputVoltage) }
func (d *Device) SetInputVoltage_mV(mV uint32) error  { return d.writeQuantity(InputVoltage, mV) }
func (d *Device) IinHost_mA() (uint32, error)         { return d.readQuantity(IinHost) }
func (d *Device) SetIinHost_mA(mA uint32) error       { return d.writeQuantity(IinHost, mA) }

// OTG settings

func (d *Device) OTGVoltage_mV() (uint32, error)   { return d.readQuantity(OTGVoltage) }
func (d *Device) SetOTGVoltage_mV(mV uint32) error { return d.writeQuantity(OTGVoltage, mV) }
func (d *Device) OTGCurrent_mA() (uint32, error)   { return d.readQuantity(OTGCurrent) }
func (d *Device) SetOTGCurrent_mA(mA uint32) error { return d.writeQuantity(OTGCurrent, mA) }

// IinDpm_mA reads the input current limit in use (IIN_DPM). The chip derives
// it from IIN_HOST or ICO; SetIinDpm_mA is accepted for revisions that let the
// host write it and is ignored by those that do not.
func (d *Device) IinDpm_mA() (uint32, error)   { return d.readQuantity(IinDpm) }
func (d *Device) SetIinDpm_mA(mA uint32) error { return d.writeQuantity(IinDpm, mA) }
