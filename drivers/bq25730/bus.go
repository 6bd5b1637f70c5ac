package bq25730

import "bq25730-go/errcode"

var errLength = &errcode.E{C: errcode.InvalidArgument, Op: "bq25730", Msg: "transfer length must be 1..30"}

// ReadRegister reads one register.
func (d *Device) ReadRegister(reg Register) (byte, error) {
	if err := d.ReadRegisters(reg, d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

// ReadRegisters fills dst from len(dst) contiguous registers starting at reg
// in one write-then-read transaction. len(dst) must be 1..MaxTransfer.
func (d *Device) ReadRegisters(reg Register, dst []byte) error {
	if len(dst) == 0 || len(dst) > MaxTransfer {
		return errLength
	}
	d.w[0] = byte(reg)
	if err := d.i2c.Tx(d.addr, d.w[:1], dst); err != nil {
		return errcode.Wrap(errcode.Transport, "bq25730: read", err)
	}
	return nil
}

// WriteRegister writes one register.
func (d *Device) WriteRegister(reg Register, v byte) error {
	d.w[0] = byte(reg)
	d.w[1] = v
	return d.tx(2)
}

// WriteRegisters writes src to contiguous registers starting at reg in one
// transaction. len(src) must be 1..MaxTransfer. A failed transfer leaves the
// registers in an unknown state; re-read before trusting them.
func (d *Device) WriteRegisters(reg Register, src []byte) error {
	if len(src) == 0 || len(src) > MaxTransfer {
		return errLength
	}
	d.w[0] = byte(reg)
	copy(d.w[1:], src)
	return d.tx(1 + len(src))
}

func (d *Device) tx(n int) error {
	if err := d.i2c.Tx(d.addr, d.w[:n], nil); err != nil {
		return errcode.Wrap(errcode.Transport, "bq25730: write", err)
	}
	return nil
}

// ---------------- Word helpers (LSB then MSB) ----------------

func (d *Device) readPair(reg Register) (lsb, msb byte, err error) {
	if err = d.ReadRegisters(reg, d.r[:2]); err != nil {
		return 0, 0, err
	}
	return d.r[0], d.r[1], nil
}

func (d *Device) writePair(reg Register, lsb, msb byte) error {
	d.w[0] = byte(reg)
	d.w[1] = lsb
	d.w[2] = msb
	return d.tx(3)
}
