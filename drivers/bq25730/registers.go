// Package bq25730 provides constants for register addresses used in the
// operation of the BQ25730 buck-boost battery charge controller.
package bq25730

// Register is a 7-bit register address. Two-byte quantities occupy an LSB/MSB
// pair with the LSB at the lower address.
type Register uint8

const (
	// 7-bit I2C address (1101_011b).
	AddressDefault = 0x6B

	// ManufacturerIDTI is the value read back from RegManufacturerID.
	ManufacturerIDTI = 0x40

	// MaxTransfer bounds the byte count of ReadRegisters/WriteRegisters.
	MaxTransfer = 30
)

const (
	// Settings (R/W, LSB/MSB pairs)
	RegChargeOption0    Register = 0x00
	RegChargeOption0Msb Register = 0x01
	RegChargeCurrent    Register = 0x02
	RegChargeCurrentMsb Register = 0x03
	RegChargeVoltage    Register = 0x04
	RegChargeVoltageMsb Register = 0x05
	RegOTGVoltage       Register = 0x06
	RegOTGVoltageMsb    Register = 0x07
	RegOTGCurrent       Register = 0x08
	RegOTGCurrentMsb    Register = 0x09
	RegInputVoltage     Register = 0x0A
	RegInputVoltageMsb  Register = 0x0B
	RegVsysMinLsb       Register = 0x0C // reserved
	RegVsysMin          Register = 0x0D
	RegIinHostLsb       Register = 0x0E // reserved
	RegIinHost          Register = 0x0F

	RegShutdownControl Register = 0x18

	// Status / readouts
	RegChargerStatus    Register = 0x20 // faults
	RegChargerStatusMsb Register = 0x21 // status
	RegProchotStatus    Register = 0x22
	RegProchotStatusMsb Register = 0x23
	RegIinDpmLsb        Register = 0x24 // reserved
	RegIinDpm           Register = 0x25
	RegADCPSYS          Register = 0x26
	RegADCVBUS          Register = 0x27
	RegADCIDCHG         Register = 0x28
	RegADCICHG          Register = 0x29
	RegADCCMPIN         Register = 0x2A
	RegADCIIN           Register = 0x2B
	RegADCVBAT          Register = 0x2C
	RegADCVSYS          Register = 0x2D
	RegManufacturerID   Register = 0x2E // R
	RegDeviceID         Register = 0x2F // R

	// Extended options / protection
	RegChargeOption1        Register = 0x30
	RegChargeOption1Msb     Register = 0x31
	RegChargeOption2        Register = 0x32
	RegChargeOption2Msb     Register = 0x33
	RegChargeOption3        Register = 0x34
	RegChargeOption3Msb     Register = 0x35
	RegProchotOption0       Register = 0x36
	RegProchotOption0Msb    Register = 0x37
	RegProchotOption1       Register = 0x38
	RegProchotOption1Msb    Register = 0x39
	RegADCOption            Register = 0x3A
	RegADCOptionMsb         Register = 0x3B
	RegChargeOption4        Register = 0x3C
	RegChargeOption4Msb     Register = 0x3D
	RegVminActiveProtect    Register = 0x3E
	RegVminActiveProtectMsb Register = 0x3F
	RegShipMode             Register = 0x40
	RegShipModeMsb          Register = 0x41
)

// adcCount is the number of contiguous ADC result bytes starting at RegADCPSYS.
const adcCount = int(RegADCVSYS-RegADCPSYS) + 1

// shipModeWord is the pattern written to RegShipMode by EnterShipModeWrite.
const shipModeWord = 0x0013
