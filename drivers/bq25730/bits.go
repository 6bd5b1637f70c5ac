package bq25730

// Each register byte is its own bit-set type; a flag of one register cannot be
// applied to another without an explicit conversion.

// ---------------- ChargeOption0 (0x00) ----------------

type ChargeOption0Msb uint8

const (
	Opt0EnLowPower        ChargeOption0Msb = 1 << 7 // low-power mode on battery
	Opt0IinDpmAutoDisable ChargeOption0Msb = 1 << 4
	Opt0OtgOnChrgOk       ChargeOption0Msb = 1 << 3
	Opt0EnOOA             ChargeOption0Msb = 1 << 2 // out-of-audio
	Opt0PwmFreq800k       ChargeOption0Msb = 1 << 1 // 0 = 400 kHz
	Opt0LowPtmRipple      ChargeOption0Msb = 1 << 0
)

type ChargeOption0Lsb uint8

const (
	Opt0EnCmpLatch  ChargeOption0Lsb = 1 << 7
	Opt0VsysUvpEnz  ChargeOption0Lsb = 1 << 6
	Opt0EnLearn     ChargeOption0Lsb = 1 << 5
	Opt0IadptGain   ChargeOption0Lsb = 1 << 4
	Opt0IbatGain    ChargeOption0Lsb = 1 << 3
	Opt0EnLDO       ChargeOption0Lsb = 1 << 2
	Opt0EnIinDpm    ChargeOption0Lsb = 1 << 1 // input current DPM
	Opt0ChrgInhibit ChargeOption0Lsb = 1 << 0
)

// ---------------- ChargeOption1 (0x30) ----------------

type ChargeOption1Msb uint8

const (
	Opt1EnIbat        ChargeOption1Msb = 1 << 7
	Opt1EnProchotLpwr ChargeOption1Msb = 1 << 5
	Opt1PsysConfig    ChargeOption1Msb = 1 << 4
	Opt1RsnsRAC       ChargeOption1Msb = 1 << 3 // 1 = 5 mΩ input sense
	Opt1RsnsRSR       ChargeOption1Msb = 1 << 2 // 1 = 5 mΩ battery sense
	Opt1PsysRatio     ChargeOption1Msb = 1 << 1
	Opt1PtmPinSel     ChargeOption1Msb = 1 << 0
)

type ChargeOption1Lsb uint8

const (
	Opt1CmpRef       ChargeOption1Lsb = 1 << 7
	Opt1CmpPol       ChargeOption1Lsb = 1 << 6
	Opt1ForceConvOff ChargeOption1Lsb = 1 << 3
	Opt1EnPTM        ChargeOption1Lsb = 1 << 2
	Opt1EnShipDchg   ChargeOption1Lsb = 1 << 1 // ship mode / VSYS discharge
	Opt1AutoWakeup   ChargeOption1Lsb = 1 << 0
)

// ---------------- ChargeOption2 (0x32) ----------------

type ChargeOption2Msb uint8

const (
	Opt2EnPkpwrIinDpm  ChargeOption2Msb = 1 << 5
	Opt2EnPkpwrVsys    ChargeOption2Msb = 1 << 4
	Opt2StatPkpwrOvld  ChargeOption2Msb = 1 << 3
	Opt2StatPkpwrRelax ChargeOption2Msb = 1 << 2
)

type ChargeOption2Lsb uint8

const (
	Opt2EnExtIlim   ChargeOption2Lsb = 1 << 7
	Opt2EnIchgIdchg ChargeOption2Lsb = 1 << 6
	Opt2Q2OCP       ChargeOption2Lsb = 1 << 5
	Opt2AcxOCP      ChargeOption2Lsb = 1 << 4
	Opt2EnACOC      ChargeOption2Lsb = 1 << 3
	Opt2ACOCVth     ChargeOption2Lsb = 1 << 2
	Opt2EnBATOC     ChargeOption2Lsb = 1 << 1
	Opt2BATOCVth    ChargeOption2Lsb = 1 << 0
)

// ---------------- ChargeOption3 (0x34) ----------------

type ChargeOption3Msb uint8

const (
	Opt3EnHiz           ChargeOption3Msb = 1 << 7
	Opt3ResetReg        ChargeOption3Msb = 1 << 6 // self-clearing
	Opt3ResetVindpm     ChargeOption3Msb = 1 << 5
	Opt3EnOTG           ChargeOption3Msb = 1 << 4
	Opt3EnICOMode       ChargeOption3Msb = 1 << 3
	Opt3EnPortCtrl      ChargeOption3Msb = 1 << 2
	Opt3EnVsysMinSoftSR ChargeOption3Msb = 1 << 1
	Opt3EnOtgBigCap     ChargeOption3Msb = 1 << 0
)

type ChargeOption3Lsb uint8

const (
	Opt3BatfetoffHiz ChargeOption3Lsb = 1 << 7
	Opt3PsysOtgIdchg ChargeOption3Lsb = 1 << 6
)

// ---------------- ChargeOption4 (0x3C) ----------------

type ChargeOption4Msb uint8

const (
	Opt4VsysUvpNoHiccup ChargeOption4Msb = 1 << 2
	Opt4PpVbusVap       ChargeOption4Msb = 1 << 1
	Opt4StatVbusVap     ChargeOption4Msb = 1 << 0
)

type ChargeOption4Lsb uint8

const (
	Opt4PpIdchg2   ChargeOption4Lsb = 1 << 2
	Opt4StatIdchg2 ChargeOption4Lsb = 1 << 1 // prochot status bit living outside ProchotStatus
	Opt4StatPTM    ChargeOption4Lsb = 1 << 0 // prochot status bit living outside ProchotStatus
)

// ---------------- ProchotOption0 (0x36) ----------------

type ProchotOption0Msb uint8

const (
	Pro0Vindpm8090 ProchotOption0Msb = 1 << 0
)

type ProchotOption0Lsb uint8

const (
	Pro0InomDeg            ProchotOption0Lsb = 1 << 1
	Pro0LowerProchotVindpm ProchotOption0Lsb = 1 << 0
)

// ---------------- ProchotOption1 (0x38) ----------------

type ProchotOption1Msb uint8

type ProchotOption1Lsb uint8

const (
	Pro1PpVindpm  ProchotOption1Lsb = 1 << 7
	Pro1PpComp    ProchotOption1Lsb = 1 << 6
	Pro1PpIcrit   ProchotOption1Lsb = 1 << 5
	Pro1PpInom    ProchotOption1Lsb = 1 << 4
	Pro1PpIdchg1  ProchotOption1Lsb = 1 << 3
	Pro1PpVsys    ProchotOption1Lsb = 1 << 2
	Pro1PpBatpres ProchotOption1Lsb = 1 << 1
	Pro1PpAcok    ProchotOption1Lsb = 1 << 0
)

// ---------------- ADCOption (0x3A) ----------------

type ADCOptionMsb uint8

const (
	ADCConv      ADCOptionMsb = 1 << 7 // 1 = continuous
	ADCStart     ADCOptionMsb = 1 << 6 // one-shot, self-clearing
	ADCFullscale ADCOptionMsb = 1 << 5
)

type ADCOptionLsb uint8

const (
	ADCEnCmpin ADCOptionLsb = 1 << 7
	ADCEnVbus  ADCOptionLsb = 1 << 6
	ADCEnPsys  ADCOptionLsb = 1 << 5
	ADCEnIin   ADCOptionLsb = 1 << 4
	ADCEnIdchg ADCOptionLsb = 1 << 3
	ADCEnIchg  ADCOptionLsb = 1 << 2
	ADCEnVsys  ADCOptionLsb = 1 << 1
	ADCEnVbat  ADCOptionLsb = 1 << 0
)

// ---------------- VminActiveProtect (0x3E) ----------------

type VminActiveProtectMsb uint8

const (
	VminTh2FollowTh1 VminActiveProtectMsb = 1 << 1
	VminEnFRS        VminActiveProtectMsb = 1 << 0 // fast role swap
)

type VminActiveProtectLsb uint8

const (
	VminEnVbusVap VminActiveProtectLsb = 1 << 2
)

// ---------------- ChargerStatus (0x20) ----------------

type ChargerStatusMsb uint8

const (
	StatAC           ChargerStatusMsb = 1 << 7 // adapter present
	StatICODone      ChargerStatusMsb = 1 << 6
	StatInVAP        ChargerStatusMsb = 1 << 5
	StatInVindpm     ChargerStatusMsb = 1 << 4
	StatInIinDpm     ChargerStatusMsb = 1 << 3
	StatInFastCharge ChargerStatusMsb = 1 << 2
	StatInPreCharge  ChargerStatusMsb = 1 << 1
	StatInOTG        ChargerStatusMsb = 1 << 0
)

type ChargerStatusLsb uint8

const (
	FaultACOV         ChargerStatusLsb = 1 << 7
	FaultBATOC        ChargerStatusLsb = 1 << 6
	FaultACOC         ChargerStatusLsb = 1 << 5
	FaultSYSOVP       ChargerStatusLsb = 1 << 4
	FaultVsysUVP      ChargerStatusLsb = 1 << 3
	FaultForceConvOff ChargerStatusLsb = 1 << 2
	FaultOtgOVP       ChargerStatusLsb = 1 << 1
	FaultOtgUVP       ChargerStatusLsb = 1 << 0
)

// ---------------- ProchotStatus (0x22) ----------------

type ProchotStatusMsb uint8

const (
	ProchotExtEn       ProchotStatusMsb = 1 << 6
	ProchotClear       ProchotStatusMsb = 1 << 3 // write 0 to clear the pulse
	ProchotStatVapFail ProchotStatusMsb = 1 << 1
	ProchotStatExitVap ProchotStatusMsb = 1 << 0
)

type ProchotStatusLsb uint8

const (
	ProchotStatVindpm      ProchotStatusLsb = 1 << 7
	ProchotStatComp        ProchotStatusLsb = 1 << 6
	ProchotStatIcrit       ProchotStatusLsb = 1 << 5
	ProchotStatInom        ProchotStatusLsb = 1 << 4
	ProchotStatIdchg1      ProchotStatusLsb = 1 << 3
	ProchotStatVsys        ProchotStatusLsb = 1 << 2
	ProchotStatBatRemoval  ProchotStatusLsb = 1 << 1
	ProchotStatAdptRemoval ProchotStatusLsb = 1 << 0
)

// ---------------- Bit-set helpers ----------------

// Has reports whether every bit of f is set; Set and Clear return a copy.

func (b ChargeOption0Msb) Has(f ChargeOption0Msb) bool                           { return b&f == f }
func (b ChargeOption0Msb) Set(f ChargeOption0Msb) ChargeOption0Msb               { return b | f }
func (b ChargeOption0Msb) Clear(f ChargeOption0Msb) ChargeOption0Msb             { return b &^ f }
func (b ChargeOption0Lsb) Has(f ChargeOption0Lsb) bool                           { return b&f == f }
func (b ChargeOption0Lsb) Set(f ChargeOption0Lsb) ChargeOption0Lsb               { return b | f }
func (b ChargeOption0Lsb) Clear(f ChargeOption0Lsb) ChargeOption0Lsb             { return b &^ f }
func (b ChargeOption1Msb) Has(f ChargeOption1Msb) bool                           { return b&f == f }
func (b ChargeOption1Msb) Set(f ChargeOption1Msb) ChargeOption1Msb               { return b | f }
func (b ChargeOption1Msb) Clear(f ChargeOption1Msb) ChargeOption1Msb             { return b &^ f }
func (b ChargeOption1Lsb) Has(f ChargeOption1Lsb) bool                           { return b&f == f }
func (b ChargeOption1Lsb) Set(f ChargeOption1Lsb) ChargeOption1Lsb               { return b | f }
func (b ChargeOption1Lsb) Clear(f ChargeOption1Lsb) ChargeOption1Lsb             { return b &^ f }
func (b ChargeOption2Msb) Has(f ChargeOption2Msb) bool                           { return b&f == f }
func (b ChargeOption2Msb) Set(f ChargeOption2Msb) ChargeOption2Msb               { return b | f }
func (b ChargeOption2Msb) Clear(f ChargeOption2Msb) ChargeOption2Msb             { return b &^ f }
func (b ChargeOption2Lsb) Has(f ChargeOption2Lsb) bool                           { return b&f == f }
func (b ChargeOption2Lsb) Set(f ChargeOption2Lsb) ChargeOption2Lsb               { return b | f }
func (b ChargeOption2Lsb) Clear(f ChargeOption2Lsb) ChargeOption2Lsb             { return b &^ f }
func (b ChargeOption3Msb) Has(f ChargeOption3Msb) bool                           { return b&f == f }
func (b ChargeOption3Msb) Set(f ChargeOption3Msb) ChargeOption3Msb               { return b | f }
func (b ChargeOption3Msb) Clear(f ChargeOption3Msb) ChargeOption3Msb             { return b &^ f }
func (b ChargeOption3Lsb) Has(f ChargeOption3Lsb) bool                           { return b&f == f }
func (b ChargeOption3Lsb) Set(f ChargeOption3Lsb) ChargeOption3Lsb               { return b | f }
func (b ChargeOption3Lsb) Clear(f ChargeOption3Lsb) ChargeOption3Lsb             { return b &^ f }
func (b ChargeOption4Msb) Has(f ChargeOption4Msb) bool                           { return b&f == f }
func (b ChargeOption4Msb) Set(f ChargeOption4Msb) ChargeOption4Msb               { return b | f }
func (b ChargeOption4Msb) Clear(f ChargeOption4Msb) ChargeOption4Msb             { return b &^ f }
func (b ChargeOption4Lsb) Has(f ChargeOption4Lsb) bool                           { return b&f == f }
func (b ChargeOption4Lsb) Set(f ChargeOption4Lsb) ChargeOption4Lsb               { return b | f }
func (b ChargeOption4Lsb) Clear(f ChargeOption4Lsb) ChargeOption4Lsb             { return b &^ f }
func (b ProchotOption0Msb) Has(f ProchotOption0Msb) bool                         { return b&f == f }
func (b ProchotOption0Msb) Set(f ProchotOption0Msb) ProchotOption0Msb            { return b | f }
func (b ProchotOption0Msb) Clear(f ProchotOption0Msb) ProchotOption0Msb          { return b &^ f }
func (b ProchotOption0Lsb) Has(f ProchotOption0Lsb) bool                         { return b&f == f }
func (b ProchotOption0Lsb) Set(f ProchotOption0Lsb) ProchotOption0Lsb            { return b | f }
func (b ProchotOption0Lsb) Clear(f ProchotOption0Lsb) ProchotOption0Lsb          { return b &^ f }
func (b ProchotOption1Msb) Has(f ProchotOption1Msb) bool                         { return b&f == f }
func (b ProchotOption1Msb) Set(f ProchotOption1Msb) ProchotOption1Msb            { return b | f }
func (b ProchotOption1Msb) Clear(f ProchotOption1Msb) ProchotOption1Msb          { return b &^ f }
func (b ProchotOption1Lsb) Has(f ProchotOption1Lsb) bool                         { return b&f == f }
func (b ProchotOption1Lsb) Set(f ProchotOption1Lsb) ProchotOption1Lsb            { return b | f }
func (b ProchotOption1Lsb) Clear(f ProchotOption1Lsb) ProchotOption1Lsb          { return b &^ f }
func (b ADCOptionMsb) Has(f ADCOptionMsb) bool                                   { return b&f == f }
func (b ADCOptionMsb) Set(f ADCOptionMsb) ADCOptionMsb                           { return b | f }
func (b ADCOptionMsb) Clear(f ADCOptionMsb) ADCOptionMsb                         { return b &^ f }
func (b ADCOptionLsb) Has(f ADCOptionLsb) bool                                   { return b&f == f }
func (b ADCOptionLsb) Set(f ADCOptionLsb) ADCOptionLsb                           { return b | f }
func (b ADCOptionLsb) Clear(f ADCOptionLsb) ADCOptionLsb                         { return b &^ f }
func (b VminActiveProtectMsb) Has(f VminActiveProtectMsb) bool                   { return b&f == f }
func (b VminActiveProtectMsb) Set(f VminActiveProtectMsb) VminActiveProtectMsb   { return b | f }
func (b VminActiveProtectMsb) Clear(f VminActiveProtectMsb) VminActiveProtectMsb { return b &^ f }
func (b VminActiveProtectLsb) Has(f VminActiveProtectLsb) bool                   { return b&f == f }
func (b VminActiveProtectLsb) Set(f VminActiveProtectLsb) VminActiveProtectLsb   { return b | f }
func (b VminActiveProtectLsb) Clear(f VminActiveProtectLsb) VminActiveProtectLsb { return b &^ f }
func (b ChargerStatusMsb) Has(f ChargerStatusMsb) bool                           { return b&f == f }
func (b ChargerStatusMsb) Set(f ChargerStatusMsb) ChargerStatusMsb               { return b | f }
func (b ChargerStatusMsb) Clear(f ChargerStatusMsb) ChargerStatusMsb             { return b &^ f }
func (b ChargerStatusLsb) Has(f ChargerStatusLsb) bool                           { return b&f == f }
func (b ChargerStatusLsb) Set(f ChargerStatusLsb) ChargerStatusLsb               { return b | f }
func (b ChargerStatusLsb) Clear(f ChargerStatusLsb) ChargerStatusLsb             { return b &^ f }
func (b ProchotStatusMsb) Has(f ProchotStatusMsb) bool                           { return b&f == f }
func (b ProchotStatusMsb) Set(f ProchotStatusMsb) ProchotStatusMsb               { return b | f }
func (b ProchotStatusMsb) Clear(f ProchotStatusMsb) ProchotStatusMsb             { return b &^ f }
func (b ProchotStatusLsb) Has(f ProchotStatusLsb) bool                           { return b&f == f }
func (b ProchotStatusLsb) Set(f ProchotStatusLsb) ProchotStatusLsb               { return b | f }
func (b ProchotStatusLsb) Clear(f ProchotStatusLsb) ProchotStatusLsb             { return b &^ f }

// ---------------- Multi-bit fields ----------------

// WatchdogTimer is ChargeOption0 WDTMR_ADJ (bits 14:13).
type WatchdogTimer uint8

const (
	WatchdogDisabled WatchdogTimer = iota
	Watchdog5s
	Watchdog88s
	Watchdog175s // POR default
)

const wdtmrMask ChargeOption0Msb = 0x60

func (b ChargeOption0Msb) Watchdog() WatchdogTimer { return WatchdogTimer((b & wdtmrMask) >> 5) }
func (b ChargeOption0Msb) WithWatchdog(w WatchdogTimer) ChargeOption0Msb {
	return b&^wdtmrMask | ChargeOption0Msb(w&0x3)<<5
}

// ProchotWidth is the PROCHOT pulse width code in ProchotStatus bits 13:12.
type ProchotWidth uint8

const (
	ProchotWidth100us ProchotWidth = iota
	ProchotWidth1ms
	ProchotWidth10ms
	ProchotWidth5ms
)

const prochotWidthMask ProchotStatusMsb = 0x30

func (b ProchotStatusMsb) Width() ProchotWidth { return ProchotWidth((b & prochotWidthMask) >> 4) }
func (b ProchotStatusMsb) WithWidth(w ProchotWidth) ProchotStatusMsb {
	return b&^prochotWidthMask | ProchotStatusMsb(w&0x3)<<4
}

// InductorClamp is ChargeOption3 IL_AVG (bits 1:0), the average inductor current clamp.
type InductorClamp uint8

const (
	InductorClamp6A InductorClamp = iota
	InductorClamp10A
	InductorClamp15A
	InductorClampOff
)

const ilAvgMask ChargeOption3Lsb = 0x03

func (b ChargeOption3Lsb) InductorClamp() InductorClamp { return InductorClamp(b & ilAvgMask) }
func (b ChargeOption3Lsb) WithInductorClamp(c InductorClamp) ChargeOption3Lsb {
	return b&^ilAvgMask | ChargeOption3Lsb(c&0x3)
}

// IcritDeglitch is ProchotOption0 ICRIT_DEG (bits 10:9).
type IcritDeglitch uint8

const (
	IcritDeg15us IcritDeglitch = iota
	IcritDeg100us
	IcritDeg400us
	IcritDeg800us
)

const icritDegMask ProchotOption0Msb = 0x06

func (b ProchotOption0Msb) IcritDeglitch() IcritDeglitch {
	return IcritDeglitch((b & icritDegMask) >> 1)
}
func (b ProchotOption0Msb) WithIcritDeglitch(g IcritDeglitch) ProchotOption0Msb {
	return b&^icritDegMask | ProchotOption0Msb(g&0x3)<<1
}

// Idchg1Deglitch is ProchotOption1 IDCHG_DEG1 (bits 9:8).
type Idchg1Deglitch uint8

const (
	Idchg1Deg78ms Idchg1Deglitch = iota
	Idchg1Deg1250ms
	Idchg1Deg5s
	Idchg1Deg20s
)

const idchgDeg1Mask ProchotOption1Msb = 0x03

func (b ProchotOption1Msb) Idchg1Deglitch() Idchg1Deglitch { return Idchg1Deglitch(b & idchgDeg1Mask) }
func (b ProchotOption1Msb) WithIdchg1Deglitch(g Idchg1Deglitch) ProchotOption1Msb {
	return b&^idchgDeg1Mask | ProchotOption1Msb(g&0x3)
}

// Composite masks.
const (
	// FaultClearable are the ChargerStatus fault latches Init clears.
	FaultClearable = FaultACOV | FaultBATOC | FaultACOC | FaultSYSOVP |
		FaultVsysUVP | FaultForceConvOff | FaultOtgOVP | FaultOtgUVP

	ADCEnAll = ADCEnCmpin | ADCEnVbus | ADCEnPsys | ADCEnIin |
		ADCEnIdchg | ADCEnIchg | ADCEnVsys | ADCEnVbat
)
