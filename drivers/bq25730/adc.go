package bq25730

// ADCMeasurements is one decoded read of the eight ADC result registers.
type ADCMeasurements struct {
	Psys_mV  uint32
	Vbus_mV  uint32
	Idchg_mA uint32
	Ichg_mA  uint32
	Cmpin_mV uint32
	Iin_mA   uint32
	Vbat_mV  uint32
	Vsys_mV  uint32
}

// adcOrder lists the quantities in register order from RegADCPSYS.
var adcOrder = [adcCount]Quantity{ADCPsys, ADCVbus, ADCIdchg, ADCIchg, ADCCmpin, ADCIin, ADCVbat, ADCVsys}

// ReadADC reads 0x26..0x2D in one transaction and decodes every channel.
func (d *Device) ReadADC() (ADCMeasurements, error) {
	buf := d.r[:adcCount]
	if err := d.ReadRegisters(RegADCPSYS, buf); err != nil {
		return ADCMeasurements{}, err
	}
	return d.codec.DecodeADC(buf)
}

// DecodeADC decodes eight ADC bytes in register order.
func (c Codec) DecodeADC(raw []byte) (ADCMeasurements, error) {
	if len(raw) != adcCount {
		return ADCMeasurements{}, errWidth
	}
	var v [adcCount]uint32
	for i, q := range adcOrder {
		x, err := c.Decode(q, raw[i:i+1])
		if err != nil {
			return ADCMeasurements{}, err
		}
		v[i] = x
	}
	return ADCMeasurements{
		Psys_mV:  v[0],
		Vbus_mV:  v[1],
		Idchg_mA: v[2],
		Ichg_mA:  v[3],
		Cmpin_mV: v[4],
		Iin_mA:   v[5],
		Vbat_mV:  v[6],
		Vsys_mV:  v[7],
	}, nil
}

// StartADC enables the given channels and starts a conversion: one-shot
// (ADC_START) or continuous (ADC_CONV). Other ADCOption bits are preserved.
func (d *Device) StartADC(continuous bool, channels ADCOptionLsb) error {
	set := ADCOption{Lsb: channels, Msb: ADCStart}
	clear := ADCOption{Lsb: ADCEnAll &^ channels}
	if continuous {
		set.Msb = ADCConv | ADCStart
	} else {
		clear.Msb = ADCConv
	}
	return d.UpdateADCOption(set, clear)
}
