// Package i2cshim adapts a host I2C bus to the tinygo driver Tx shape.
package i2cshim

import (
	"log"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"
)

// Bus is the single method the shim needs. periph's i2c.Bus satisfies it.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// I2C forwards transactions to a Bus and, when a trace logger is set, logs
// each one with its payload and result.
type I2C struct {
	b     Bus
	trace *log.Logger
}

var _ drivers.I2C = I2C{}

func New(b Bus) I2C { return I2C{b: b} }

func (s I2C) WithTrace(l *log.Logger) I2C {
	s.trace = l
	return s
}

func (s I2C) Tx(addr uint16, w, r []byte) error {
	err := s.b.Tx(addr, w, r)
	if s.trace == nil {
		return err
	}
	switch {
	case err != nil:
		s.trace.Printf("tx %#02x w=[% X] rn=%d: %v", addr, w, len(r), err)
	case len(r) > 0:
		s.trace.Printf("tx %#02x w=[% X] r=[% X]", addr, w, r)
	default:
		s.trace.Printf("tx %#02x w=[% X]", addr, w)
	}
	return err
}

// Open registers the host drivers and opens a bus by periph name ("" for the
// first bus found, "1" or "/dev/i2c-1" for a specific one).
func Open(name string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}
