package model

// Fingerprint is an FP line of an OPERLOG body. TMP holds the template as
// sent by the device.
type Fingerprint struct {
	PIN string `json:"pin" yaml:"pin"`
	FID string `json:"fid" yaml:"fid"`
	TMP string `json:"tmp" yaml:"tmp"`
	Raw string `json:"raw" yaml:"raw"`
}

var fingerprintMapping = fieldMapping[Fingerprint]{
	renames: map[string]string{
		"PIN": "pin",
		"FID": "fid",
		"TMP": "tmp",
	},
	fields: map[string]fieldSetter[Fingerprint]{
		"pin": func(f *Fingerprint, v string) { f.PIN = v },
		"fid": func(f *Fingerprint, v string) { f.FID = v },
		"tmp": func(f *Fingerprint, v string) { f.TMP = v },
	},
}

func DecodeFingerprint(line string) Fingerprint {
	f := Fingerprint{Raw: line}
	fingerprintMapping.fill(&f, parseKeyValues(line))
	return f
}
