// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis302dl

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/GermanBionicSystems/motion/accel"
)

// Register subset used by this driver.
const (
	regWhoAmI byte = 0x0F // Device identification
	regCtrl1  byte = 0x20 // Data rate, power state, scale, axis enables
	regOutX   byte = 0x29 // X axis output
	regOutY   byte = 0x2B // Y axis output
	regOutZ   byte = 0x2D // Z axis output
)

// deviceID is the constant content of the WHO_AM_I register.
const deviceID byte = 0x3B

// readFlag is ORed into the register address byte to request a read.
const readFlag byte = 0x80

// Axis enable bits of CTRL_REG1. The driver keeps all three axes enabled.
const (
	xEnable byte = 0x01
	yEnable byte = 0x02
	zEnable byte = 0x04
)

// scale converts one output count into g, from the typical sensitivity of
// 18mg/digit at ±2g. The same constant is applied when ±8g is selected, so
// normalized samples are only accurate at ±2g full scale.
const scale = float32(4.6 / 256.0)

// PowerMode is the power state bit of CTRL_REG1.
type PowerMode byte

const (
	PowerDown PowerMode = 0x00 // Power down mode, outputs frozen
	Active    PowerMode = 0x40 // Active mode, continuous measurement
)

// Scale is the full scale selection bit of CTRL_REG1.
type Scale byte

const (
	Scale2g Scale = 0x00 // ±2g full scale
	Scale8g Scale = 0x20 // ±8g full scale
)

// DataRate is the output data rate bit of CTRL_REG1.
type DataRate byte

const (
	Rate100Hz DataRate = 0x00 // 100Hz output data rate
	Rate400Hz DataRate = 0x80 // 400Hz output data rate
)

// Connection parameters. The LIS302DL accepts SPI clocks up to 10MHz and
// samples data on the rising edge with the clock idling high.
var (
	SpiFrequency = physic.MegaHertz
	SpiMode      = spi.Mode3
	SpiBits      = 8
)

// Opts holds the configuration written to CTRL_REG1.
//
// The zero value matches the reset state of the device: powered down, ±2g
// full scale, 100Hz data rate.
type Opts struct {
	Power PowerMode
	Scale Scale
	Rate  DataRate
}

// DefaultOpts powers the device up at ±2g full scale and 400Hz data rate.
var DefaultOpts = Opts{
	Power: Active,
	Scale: Scale2g,
	Rate:  Rate400Hz,
}

// controlByte assembles the CTRL_REG1 value for o. The three axis enable
// bits are always set.
func controlByte(o *Opts) byte {
	return byte(o.Rate) | byte(o.Power) | byte(o.Scale) | xEnable | yEnable | zEnable
}

// DebugF is the debug print function type.
type DebugF func(string, ...interface{})

func noop(string, ...interface{}) {}

// Dev is a handle to a LIS302DL on a SPI port.
type Dev struct {
	c     spi.Conn
	cs    gpio.PinOut
	opts  Opts
	debug DebugF
}

// New opens the device on p using cs as the chip select line, verifies its
// identity and writes the configuration in opts to it. A nil opts selects
// DefaultOpts.
//
// An identity mismatch does not abort: the configuration is still written
// and New returns a usable *Dev together with an *IdentityError, leaving
// the decision to the caller. Any transport error aborts.
func New(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, err
	}
	d := &Dev{c: c, cs: cs, opts: *opts, debug: noop}
	id, err := d.whoAmI()
	if err != nil {
		return nil, err
	}
	if err := d.writeByte(regCtrl1, controlByte(opts)); err != nil {
		return nil, err
	}
	if id != deviceID {
		return d, &IdentityError{Got: id, Want: deviceID}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("LIS302DL{%s}", d.c)
}

// EnableDebug sets f as the sink for register traffic traces.
func (d *Dev) EnableDebug(f DebugF) {
	d.debug = f
}

// SenseRaw reads the three output registers once and returns the signed
// counts. The registers are read in X, Y, Z order, one exchange each.
func (d *Dev) SenseRaw() (accel.RawSample, error) {
	x, err := d.readByte(regOutX)
	if err != nil {
		return accel.RawSample{}, err
	}
	y, err := d.readByte(regOutY)
	if err != nil {
		return accel.RawSample{}, err
	}
	z, err := d.readByte(regOutZ)
	if err != nil {
		return accel.RawSample{}, err
	}
	return accel.RawSample{X: int8(x), Y: int8(y), Z: int8(z)}, nil
}

// Sense reads one sample and normalizes it to g. The conversion assumes
// ±2g full scale, see the scale constant.
func (d *Dev) Sense() (accel.Sample, error) {
	r, err := d.SenseRaw()
	if err != nil {
		return accel.Sample{}, err
	}
	return accel.Sample{
		X: float32(r.X) * scale,
		Y: float32(r.Y) * scale,
		Z: float32(r.Z) * scale,
	}, nil
}

// SampleRate returns the output data rate in Hz the device was configured
// with. It does not touch the bus.
func (d *Dev) SampleRate() float32 {
	if d.opts.Rate == Rate400Hz {
		return 400
	}
	return 100
}

// Halt implements conn.Resource. It powers the device down, keeping the
// rest of the configuration intact.
func (d *Dev) Halt() error {
	o := d.opts
	o.Power = PowerDown
	return d.writeByte(regCtrl1, controlByte(&o))
}

// whoAmI reads the device identification register.
func (d *Dev) whoAmI() (byte, error) {
	return d.readByte(regWhoAmI)
}

func (d *Dev) readByte(address byte) (byte, error) {
	d.debug("read register %#x", address)
	var (
		buf = [...]byte{readFlag | address, 0}
		res [2]byte
	)
	if err := d.cs.Out(gpio.Low); err != nil {
		return 0, err
	}
	txErr := d.c.Tx(buf[:], res[:])
	// Deselect even when the exchange failed.
	if err := d.cs.Out(gpio.High); txErr == nil && err != nil {
		return 0, err
	}
	if txErr != nil {
		return 0, txErr
	}
	d.debug("register %#x reads %#x", address, res[1])
	return res[1], nil
}

func (d *Dev) writeByte(address, value byte) error {
	d.debug("write register %#x value %#x", address, value)
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	txErr := d.c.Tx([]byte{address, value}, nil)
	if err := d.cs.Out(gpio.High); txErr == nil && err != nil {
		return err
	}
	return txErr
}

var _ accel.Reader = &Dev{}
var _ conn.Resource = &Dev{}
