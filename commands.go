package ssd1325

// SSD1325 command set. Section numbers refer to the controller datasheet.
const (
	setColumnAddr      = 0x15 // 10.1.1, start, end
	setRowAddr         = 0x75 // 10.1.2, start, end
	setContrast        = 0x81 // 10.1.3, 0x00..0x7F
	setCurrentFull     = 0x87 // 10.1.4
	setRemap           = 0xA0 // 10.1.5, bitmask
	setStartLine       = 0xA1 // 10.1.6
	setOffset          = 0xA2 // 10.1.7
	normalDisplay      = 0xA4 // 10.1.8.1
	invertDisplay      = 0xA7 // 10.1.8.4
	setMultiplex       = 0xA8 // 10.1.9
	masterConfig       = 0xAD // 10.1.10
	displayOff         = 0xAE // 10.1.11
	displayOn          = 0xAF // 10.1.11
	setPrechargeCompEn = 0xB0 // Table 18
	setPhaseLen        = 0xB1 // 10.1.14
	setRowPeriod       = 0xB2 // 10.1.15
	setClock           = 0xB3 // 10.1.16
	setPrechargeComp   = 0xB4 // Table 18
	setGrayTable       = 0xB8 // Table 18, 8 bytes
	setVCOMLevel       = 0xBE // 10.1.12
	setVSL             = 0xBF // Table 18
	gfxAccel           = 0x23 // Table 18
)

const contrastMask byte = 0x7F

// initSequence is sent in command mode after the reset pulse. It must match
// the controller documentation byte for byte.
var initSequence = [...]byte{
	displayOff,
	setClock, 0xF1, // oscillator frequency / divide ratio
	setMultiplex, 0x3F, // 1/64 duty
	setOffset, 0x4C, // 76
	setStartLine, 0x00,
	masterConfig, 0x02, // DC/DC converter
	setRemap, 0x50, // COM split, bottom-up, horizontal increment, no nibble remap
	setCurrentFull,
	setGrayTable, 0x01, 0x11, 0x22, 0x32, 0x43, 0x54, 0x65, 0x76,
	setContrast, 0x7F,
	setRowPeriod, 0x51,
	setPhaseLen, 0x55,
	setPrechargeComp, 0x02,
	setPrechargeCompEn, 0x28,
	setVCOMLevel, 0x1C, // 0.80 * Vref
	setVSL, 0x0D | 0x02,
	normalDisplay,
	gfxAccel, 0x01, // fill rectangle on draw
}

// windowSequence selects the full 128x64 RAM window before a frame
// transfer.
var windowSequence = [...]byte{
	setColumnAddr, 0x00, 0x3F,
	setRowAddr, 0x00, 0x3F,
}
