package cli

import "strings"

// bands lists the selectable bands in frequency order
var bands = []string{"160M", "80M", "60M", "40M", "30M", "20M", "17M", "15M", "12M", "10M", "6M", "2M", "70CM"}

// bandFrequencies pre-fills the frequency (MHz) for a band
var bandFrequencies = map[string]string{
	"160M": "1.8",
	"80M":  "3.5",
	"60M":  "5.3",
	"40M":  "7.0",
	"30M":  "10.1",
	"20M":  "14.0",
	"17M":  "18.1",
	"15M":  "21.0",
	"12M":  "24.9",
	"10M":  "28.0",
	"6M":   "50.0",
	"2M":   "144.0",
	"70CM": "432.0",
}

// modes lists the selectable modes
var modes = []string{"SSB", "USB", "LSB", "CW", "FT8"}

// defaultFrequency returns the band's usual starting frequency, 14.0 if unknown
func defaultFrequency(band string) string {
	if f, ok := bandFrequencies[strings.ToUpper(band)]; ok {
		return f
	}
	return "14.0"
}

// defaultRST returns the report customary for mode: RST for CW and digital, RS otherwise
func defaultRST(mode string) string {
	switch strings.ToUpper(mode) {
	case "CW", "FT8":
		return "599"
	default:
		return "59"
	}
}
