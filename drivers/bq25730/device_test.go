package bq25730

import (
	"bytes"
	"errors"
	"testing"

	"bq25730-go/errcode"
)

func TestRegisterAccessLengthValidation(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	for _, n := range []int{0, MaxTransfer + 1} {
		if err := d.ReadRegisters(RegChargeOption0, make([]byte, n)); !errors.Is(err, errcode.InvalidArgument) {
			t.Fatalf("ReadRegisters len %d: err = %v, want invalid_argument", n, err)
		}
		if err := d.WriteRegisters(RegChargeOption0, make([]byte, n)); !errors.Is(err, errcode.InvalidArgument) {
			t.Fatalf("WriteRegisters len %d: err = %v, want invalid_argument", n, err)
		}
	}
	if len(bus.txs) != 0 {
		t.Fatalf("length violations reached the bus: %d transactions", len(bus.txs))
	}
	if err := d.ReadRegisters(RegChargeOption0, make([]byte, MaxTransfer)); err != nil {
		t.Fatalf("ReadRegisters(30): %v", err)
	}
	if err := d.WriteRegisters(RegChargeOption0, make([]byte, MaxTransfer)); err != nil {
		t.Fatalf("WriteRegisters(30): %v", err)
	}
}

func TestRegisterAccessWireFormat(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegDeviceID] = 0xD6
	v, err := d.ReadRegister(RegDeviceID)
	if err != nil || v != 0xD6 {
		t.Fatalf("ReadRegister = %#x, %v", v, err)
	}
	if err := d.WriteRegisters(RegChargeVoltage, []byte{0x11, 0x22}); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteRegister(RegVsysMin, 0x23); err != nil {
		t.Fatal(err)
	}
	want := []txRecord{
		{addr: AddressDefault, w: []byte{0x2F}, rlen: 1},
		{addr: AddressDefault, w: []byte{0x04, 0x11, 0x22}},
		{addr: AddressDefault, w: []byte{0x0D, 0x23}},
	}
	if len(bus.txs) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(bus.txs), len(want))
	}
	for i, tx := range bus.txs {
		if tx.addr != want[i].addr || !bytes.Equal(tx.w, want[i].w) || tx.rlen != want[i].rlen {
			t.Fatalf("tx %d = %+v, want %+v", i, tx, want[i])
		}
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.failAt = 1
	_, err := d.ChargeCurrent_mA()
	if !errors.Is(err, errcode.Transport) || !errors.Is(err, errNack) {
		t.Fatalf("err = %v, want transport wrapping nack", err)
	}
	if errcode.Of(err) != errcode.Transport {
		t.Fatalf("Of(err) = %q", errcode.Of(err))
	}
	bus.failAt = 2
	if err := d.SetChargeCurrent_mA(512); !errors.Is(err, errcode.Transport) {
		t.Fatalf("write err = %v", err)
	}
}

func TestInitClearsFaultsAndPreservesStatus(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	fill(bus, 0xFF)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	w := bus.writes()
	if len(w) != 4 {
		t.Fatalf("Init issued %d writes, want 4", len(w))
	}
	// Read-modify-write of ChargeOption0 keeps every bit.
	if !bytes.Equal(w[0].w, []byte{byte(RegChargeOption0), 0xFF, 0xFF}) {
		t.Fatalf("ChargeOption0 write = % X", w[0].w)
	}
	if !bytes.Equal(w[1].w, []byte{byte(RegIinHost), 0x3F}) {
		t.Fatalf("IIN_HOST write = % X", w[1].w)
	}
	if !bytes.Equal(w[2].w, []byte{byte(RegVsysMin), 0x24}) {
		t.Fatalf("VSYS_MIN write = % X", w[2].w)
	}
	// Faults cleared, status byte untouched.
	if !bytes.Equal(w[3].w, []byte{byte(RegChargerStatus), 0x00, 0xFF}) {
		t.Fatalf("status write = % X", w[3].w)
	}
}

func TestInitClearsOnlyFaultBits(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegChargerStatus] = byte(FaultACOC | FaultOtgOVP)
	bus.regs[RegChargerStatusMsb] = byte(StatAC | StatInFastCharge)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	s, err := d.ReadChargerStatus()
	if err != nil {
		t.Fatal(err)
	}
	if s.HasFault() || s.Status != StatAC|StatInFastCharge {
		t.Fatalf("after Init: %+v", s)
	}
}

func TestInitReadModifyWriteSetsIinDpm(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegChargeOption0] = 0x00
	bus.regs[RegChargeOption0Msb] = 0x5A
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if bus.regs[RegChargeOption0] != byte(Opt0EnIinDpm) || bus.regs[RegChargeOption0Msb] != 0x5A {
		t.Fatalf("ChargeOption0 = %#x/%#x", bus.regs[RegChargeOption0], bus.regs[RegChargeOption0Msb])
	}
}

func TestInitBlindWrite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Init = InitBlindWrite
	cfg.ChargeOption0 = FlagsFromWord[ChargeOption0Lsb, ChargeOption0Msb](0x1234)
	d, bus := newTestDevice(cfg)
	fill(bus, 0xFF)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	// No read before the ChargeOption0 write.
	if bus.txs[0].rlen != 0 || !bytes.Equal(bus.txs[0].w, []byte{0x00, 0x34, 0x12}) {
		t.Fatalf("first tx = %+v", bus.txs[0])
	}
}

func TestInitAbortsOnFirstFailure(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	// tx1 read CO0, tx2 write CO0, tx3 write IIN_HOST (fails).
	bus.failAt = 3
	bus.regs[RegVsysMin] = 0x99
	if err := d.Init(); !errors.Is(err, errcode.Transport) {
		t.Fatalf("Init err = %v", err)
	}
	if len(bus.txs) != 3 {
		t.Fatalf("Init continued after failure: %d transactions", len(bus.txs))
	}
	if bus.regs[RegChargeOption0] != byte(Opt0EnIinDpm) {
		t.Fatal("ChargeOption0 write before the failure was not kept")
	}
	if bus.regs[RegVsysMin] != 0x99 {
		t.Fatal("VSYS_MIN was written after the failing step")
	}
}

func TestScaledSettersWriteLSBFirst(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	if err := d.SetChargeVoltage_mV(19200); err != nil {
		t.Fatal(err)
	}
	if err := d.SetChargeCurrent_mA(3968 + 63); err != nil {
		t.Fatal(err)
	}
	w := bus.writes()
	if !bytes.Equal(w[0].w, []byte{0x04, 0x00, 0x8E}) {
		t.Fatalf("charge voltage write = % X", w[0].w)
	}
	if !bytes.Equal(w[1].w, []byte{0x02, 0x3E, 0x00}) {
		t.Fatalf("charge current write = % X", w[1].w)
	}
	if mA, err := d.ChargeCurrent_mA(); err != nil || mA != 3968 {
		t.Fatalf("ChargeCurrent_mA = %d, %v", mA, err)
	}
}

func TestUnknownQuantityRejectedBeforeBus(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	if _, err := d.Read(Quantity(99)); !errors.Is(err, errcode.InvalidArgument) {
		t.Fatalf("Read err = %v, want invalid_argument", err)
	}
	if err := d.Write(numQuantities, 1); !errors.Is(err, errcode.InvalidArgument) {
		t.Fatalf("Write err = %v, want invalid_argument", err)
	}
	if len(bus.txs) != 0 {
		t.Fatalf("%d transactions for an unknown quantity", len(bus.txs))
	}
}

func TestScaledAccessorsRoundTrip(t *testing.T) {
	d, _ := newTestDevice(DefaultConfig())
	for _, tc := range []struct {
		set func(uint32) error
		get func() (uint32, error)
		v   uint32
	}{
		{d.SetChargeCurrent_mA, d.ChargeCurrent_mA, 2048},
		{d.SetChargeVoltage_mV, d.ChargeVoltage_mV, 8400},
		{d.SetOTGVoltage_mV, d.OTGVoltage_mV, 5000},
		{d.SetOTGCurrent_mA, d.OTGCurrent_mA, 3000},
		{d.SetInputVoltage_mV, d.InputVoltage_mV, 4480},
		{d.SetVsysMin_mV, d.VsysMin_mV, 6600},
		{d.SetIinHost_mA, d.IinHost_mA, 1500},
		{d.SetIinDpm_mA, d.IinDpm_mA, 1000},
	} {
		if err := tc.set(tc.v); err != nil {
			t.Fatal(err)
		}
		got, err := tc.get()
		if err != nil || got != tc.v {
			t.Fatalf("round trip %d: got %d, %v", tc.v, got, err)
		}
	}
}

func TestSenseResistorChangesDeviceScaling(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegADCIIN] = 0x20
	a, _ := d.Read(ADCIin)
	cfg := d.Config()
	cfg.RsnsAC = Sense5mOhm
	if err := d.Configure(cfg); err != nil {
		t.Fatal(err)
	}
	b, _ := d.Read(ADCIin)
	if a != 0x20*50 || b != 2*a {
		t.Fatalf("IIN 10 mΩ = %d, 5 mΩ = %d", a, b)
	}
	if len(bus.writes()) != 0 {
		t.Fatal("Configure wrote to the chip")
	}
}

func TestReadADCSingleTransaction(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	copy(bus.regs[RegADCPSYS:], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	m, err := d.ReadADC()
	if err != nil {
		t.Fatal(err)
	}
	if len(bus.txs) != 1 || bus.txs[0].rlen != 8 || bus.txs[0].w[0] != byte(RegADCPSYS) {
		t.Fatalf("ReadADC transactions = %+v", bus.txs)
	}
	want := ADCMeasurements{
		Psys_mV: 12, Vbus_mV: 2 * 96, Idchg_mA: 3 * 256, Ichg_mA: 4 * 64,
		Cmpin_mV: 5 * 12, Iin_mA: 6 * 50, Vbat_mV: 2880 + 7*64, Vsys_mV: 2880 + 8*64,
	}
	if m != want {
		t.Fatalf("ReadADC = %+v, want %+v", m, want)
	}
}

func TestReadProchotStatusMergesTwoReads(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegProchotStatus] = byte(ProchotStatVsys | ProchotStatIcrit)
	bus.regs[RegProchotStatusMsb] = byte(ProchotStatusMsb(0).WithWidth(ProchotWidth10ms) | ProchotClear)
	bus.regs[RegChargeOption4] = byte(Opt4StatIdchg2 | Opt4PpIdchg2)
	s, err := d.ReadProchotStatus()
	if err != nil {
		t.Fatal(err)
	}
	if len(bus.txs) != 2 {
		t.Fatalf("ReadProchotStatus used %d transactions, want 2", len(bus.txs))
	}
	if !s.Stat.Has(ProchotStatVsys|ProchotStatIcrit) || s.Control.Width() != ProchotWidth10ms || !s.Control.Has(ProchotClear) {
		t.Fatalf("status = %+v", s)
	}
	if !s.Idchg2 || s.PTM {
		t.Fatalf("aux bits Idchg2=%v PTM=%v", s.Idchg2, s.PTM)
	}
	bus.failAt = len(bus.txs) + 2
	if _, err := d.ReadProchotStatus(); !errors.Is(err, errcode.Transport) {
		t.Fatalf("second read failure not surfaced: %v", err)
	}
}

func TestShipModeStrategies(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	if err := d.EnterShipMode(); err != nil {
		t.Fatal(err)
	}
	if len(bus.txs) != 1 || !bytes.Equal(bus.txs[0].w, []byte{0x40, 0x13, 0x00}) {
		t.Fatalf("register-write ship mode = %+v", bus.txs)
	}

	cfg := DefaultConfig()
	cfg.ShipMode = ShipModeDischargeBit
	d, bus = newTestDevice(cfg)
	bus.regs[RegChargeOption1] = 0xA4
	bus.regs[RegChargeOption1Msb] = 0x3C
	if err := d.EnterShipMode(); err != nil {
		t.Fatal(err)
	}
	if bus.regs[RegChargeOption1] != 0xA6 || bus.regs[RegChargeOption1Msb] != 0x3C {
		t.Fatalf("ChargeOption1 = %#x/%#x", bus.regs[RegChargeOption1], bus.regs[RegChargeOption1Msb])
	}
	if bus.regs[RegShipMode] != 0 {
		t.Fatal("discharge-bit strategy touched the ship register")
	}
}

func TestFlagBlockUpdatePreservesBits(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegChargeOption3] = 0x41
	bus.regs[RegChargeOption3Msb] = 0x90
	err := d.UpdateChargeOption3(
		ChargeOption3{Msb: Opt3EnOTG | Opt3EnICOMode},
		ChargeOption3{Msb: Opt3EnHiz, Lsb: Opt3PsysOtgIdchg},
	)
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.ChargeOption3()
	if err != nil {
		t.Fatal(err)
	}
	if got.Msb != 0x18 || got.Lsb != 0x01 {
		t.Fatalf("ChargeOption3 = %+v", got)
	}
}

func TestFlagBlocksAddressing(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	writes := []func() error{
		func() error { return d.WriteChargeOption0(ChargeOption0{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteChargeOption1(ChargeOption1{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteChargeOption2(ChargeOption2{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteChargeOption3(ChargeOption3{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteChargeOption4(ChargeOption4{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteProchotOption0(ProchotOption0{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteProchotOption1(ProchotOption1{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteADCOption(ADCOption{Lsb: 1, Msb: 2}) },
		func() error { return d.WriteVminActiveProtect(VminActiveProtect{Lsb: 1, Msb: 2}) },
	}
	regs := []Register{
		RegChargeOption0, RegChargeOption1, RegChargeOption2, RegChargeOption3, RegChargeOption4,
		RegProchotOption0, RegProchotOption1, RegADCOption, RegVminActiveProtect,
	}
	for i, w := range writes {
		if err := w(); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(bus.txs[i].w, []byte{byte(regs[i]), 1, 2}) {
			t.Fatalf("write %d = % X", i, bus.txs[i].w)
		}
	}
	if v, _ := d.ProchotOption1(); v.Word() != 0x0201 {
		t.Fatalf("ProchotOption1 = %#04x", v.Word())
	}
	if v, _ := d.VminActiveProtect(); v.Word() != 0x0201 {
		t.Fatalf("VminActiveProtect = %#04x", v.Word())
	}
}

func TestStartADC(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegADCOption] = 0xFF
	bus.regs[RegADCOptionMsb] = byte(ADCConv | ADCFullscale)
	if err := d.StartADC(false, ADCEnVbat|ADCEnVsys); err != nil {
		t.Fatal(err)
	}
	o, _ := d.ADCOption()
	if o.Lsb != ADCEnVbat|ADCEnVsys || o.Msb != ADCStart|ADCFullscale {
		t.Fatalf("one-shot ADCOption = %+v", o)
	}
	if err := d.StartADC(true, ADCEnAll); err != nil {
		t.Fatal(err)
	}
	o, _ = d.ADCOption()
	if o.Lsb != ADCEnAll || !o.Msb.Has(ADCConv|ADCStart|ADCFullscale) {
		t.Fatalf("continuous ADCOption = %+v", o)
	}
}

func TestApplySenseResistorsAndWatchdog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RsnsAC = Sense5mOhm
	d, bus := newTestDevice(cfg)
	bus.regs[RegChargeOption1Msb] = byte(Opt1RsnsRSR | Opt1EnIbat)
	if err := d.ApplySenseResistors(); err != nil {
		t.Fatal(err)
	}
	if got := ChargeOption1Msb(bus.regs[RegChargeOption1Msb]); got != Opt1RsnsRAC|Opt1EnIbat {
		t.Fatalf("ChargeOption1 MSB = %#x", got)
	}
	bus.regs[RegChargeOption0Msb] = 0xE7
	if err := d.SetWatchdog(WatchdogDisabled); err != nil {
		t.Fatal(err)
	}
	if bus.regs[RegChargeOption0Msb] != 0x87 {
		t.Fatalf("ChargeOption0 MSB = %#x", bus.regs[RegChargeOption0Msb])
	}
}

func TestProbe(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegManufacturerID] = ManufacturerIDTI
	if err := d.Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	bus.regs[RegManufacturerID] = 0x00
	if err := d.Probe(); !errors.Is(err, errcode.InvalidData) {
		t.Fatalf("Probe err = %v, want invalid_data", err)
	}
}

func TestSnapshotKeepsZeroOnFailure(t *testing.T) {
	d, bus := newTestDevice(DefaultConfig())
	bus.regs[RegChargerStatusMsb] = byte(StatAC)
	bus.regs[RegVsysMin] = 0x24
	bus.failAt = 1 // ADC read fails
	s := d.Snapshot()
	if s.ADC != (ADCMeasurements{}) {
		t.Fatalf("ADC after failure = %+v", s.ADC)
	}
	if !s.Charger.Status.Has(StatAC) || s.VsysMin_mV != 3600 {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestConfigValidateAndDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	bad := DefaultConfig()
	bad.Cells = 6
	if err := bad.Validate(); !errors.Is(err, errcode.InvalidArgument) {
		t.Fatalf("cells 6: %v", err)
	}
	bad = DefaultConfig()
	bad.ShipMode = 9
	if err := bad.Validate(); !errors.Is(err, errcode.InvalidArgument) {
		t.Fatalf("ship mode 9: %v", err)
	}
	d := New(&fakeBus{}, Config{Cells: 3})
	if d.Address() != AddressDefault || d.Config().VsysMin_mV != 9200 {
		t.Fatalf("zero-config defaults: addr %#x vsys %d", d.Address(), d.Config().VsysMin_mV)
	}
	if err := d.Configure(bad); err == nil {
		t.Fatal("Configure accepted an invalid config")
	}

	bad = DefaultConfig()
	bad.Address = 0x80
	if err := bad.Validate(); !errors.Is(err, errcode.InvalidArgument) {
		t.Fatalf("address 0x80: %v", err)
	}
	bad = DefaultConfig()
	bad.RsnsAC = 7
	if err := d.Configure(bad); !errors.Is(err, errcode.InvalidArgument) {
		t.Fatalf("sense 7: %v", err)
	}
	if d.Config().RsnsAC != Sense10mOhm {
		t.Fatal("rejected config was applied")
	}
}

func TestZeroConfigInitKeepsInputLimit(t *testing.T) {
	d, bus := newTestDevice(Config{Cells: 1})
	if d.Config().IinHost_mA != 3200 {
		t.Fatalf("IinHost_mA default = %d", d.Config().IinHost_mA)
	}
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if bus.regs[RegIinHost] != 0x3F {
		t.Fatalf("IIN_HOST = %#x, want 0x3f", bus.regs[RegIinHost])
	}
	if mA, err := d.IinHost_mA(); err != nil || mA != 3200 {
		t.Fatalf("IinHost_mA = %d, %v", mA, err)
	}
}
