package bq25730

// Snapshot collects commonly used telemetry, settings and status.
// Zero values remain where individual reads fail.
type Snapshot struct {
	ADC     ADCMeasurements
	Charger ChargerStatus
	Prochot ProchotStatus

	ChargeCurrent_mA uint32
	ChargeVoltage_mV uint32
	IinHost_mA       uint32
	IinDpm_mA        uint32
	VsysMin_mV       uint32
}

func (d *Device) Snapshot() Snapshot {
	var s Snapshot
	d.SnapshotInto(&s)
	return s
}

func (d *Device) SnapshotInto(out *Snapshot) {
	var s Snapshot
	if v, e := d.ReadADC(); e == nil {
		s.ADC = v
	}
	if v, e := d.ReadChargerStatus(); e == nil {
		s.Charger = v
	}
	if v, e := d.ReadProchotStatus(); e == nil {
		s.Prochot = v
	}
	if v, e := d.ChargeCurrent_mA(); e == nil {
		s.ChargeCurrent_mA = v
	}
	if v, e := d.ChargeVoltage_mV(); e == nil {
		s.ChargeVoltage_mV = v
	}
	if v, e := d.IinHost_mA(); e == nil {
		s.IinHost_mA = v
	}
	if v, e := d.IinDpm_mA(); e == nil {
		s.IinDpm_mA = v
	}
	if v, e := d.VsysMin_mV(); e == nil {
		s.VsysMin_mV = v
	}
	*out = s
}
