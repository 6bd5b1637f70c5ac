package bq25730

import "errors"

var errNack = errors.New("nack")

type txRecord struct {
	addr uint16
	w    []byte
	rlen int
}

// fakeBus is an in-memory register file behind the drivers.I2C Tx shape.
// Reads return regs[reg...], writes store into regs. failAt makes the n-th
// transaction (1-based) fail without side effects.
type fakeBus struct {
	regs   [256]byte
	txs    []txRecord
	failAt int
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	rec := txRecord{addr: addr, w: append([]byte(nil), w...), rlen: len(r)}
	f.txs = append(f.txs, rec)
	if f.failAt != 0 && len(f.txs) == f.failAt {
		return errNack
	}
	if len(w) == 0 {
		return nil
	}
	reg := int(w[0])
	if len(r) > 0 {
		copy(r, f.regs[reg:])
		return nil
	}
	copy(f.regs[reg:], w[1:])
	return nil
}

// writes returns only the write transactions (no read half).
func (f *fakeBus) writes() []txRecord {
	var out []txRecord
	for _, t := range f.txs {
		if t.rlen == 0 {
			out = append(out, t)
		}
	}
	return out
}

func fill(f *fakeBus, v byte) {
	for i := range f.regs {
		f.regs[i] = v
	}
}

func newTestDevice(cfg Config) (*Device, *fakeBus) {
	bus := &fakeBus{}
	return New(bus, cfg), bus
}
