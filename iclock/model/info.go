package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Device reported counts arrive in compressed units.
const (
	attLogCountUnit = 10000
	fingerCountUnit = 100
)

const tftMarker = "_TFT"

// Info is the device capability snapshot announced in the INFO parameter.
type Info struct {
	FWVersion        string `json:"fw_version" yaml:"fw_version"`
	FPCount          int    `json:"fp_count" yaml:"fp_count"`
	TransactionCount int    `json:"transaction_count" yaml:"transaction_count"`
	UserCount        int    `json:"user_count" yaml:"user_count"`
	MainTime         string `json:"main_time" yaml:"main_time"`
	MaxFingerCount   int    `json:"max_finger_count" yaml:"max_finger_count"`
	LockFunOn        string `json:"lock_fun_on" yaml:"lock_fun_on"`
	MaxAttLogCount   int    `json:"max_att_log_count" yaml:"max_att_log_count"`
	DeviceName       string `json:"device_name" yaml:"device_name"`
	AlgVer           string `json:"alg_ver" yaml:"alg_ver"`
	FlashSize        string `json:"flash_size" yaml:"flash_size"`
	FreeFlashSize    string `json:"free_flash_size" yaml:"free_flash_size"`
	Language         string `json:"language" yaml:"language"`
	Volume           string `json:"volume" yaml:"volume"`
	DtFmt            string `json:"dt_fmt" yaml:"dt_fmt"`
	IPAddress        string `json:"ip_address" yaml:"ip_address"`
	IsTFT            bool   `json:"is_tft" yaml:"is_tft"`
	Platform         string `json:"platform" yaml:"platform"`
	Brightness       string `json:"brightness" yaml:"brightness"`
	BackupDev        string `json:"backup_dev" yaml:"backup_dev"`
	OEMVendor        string `json:"oem_vendor" yaml:"oem_vendor"`
	FPVersion        string `json:"fp_version" yaml:"fp_version"`
	Raw              string `json:"raw" yaml:"raw"`
}

var infoMapping = fieldMapping[Info]{
	renames: map[string]string{
		"FWVersion": "fw_version",
		"FPCount":   "fp_count",
		"VOLUME":    "volume",
		"IPAddress": "ip_address",
		"IsTFT":     "is_tft",
		"OEMVendor": "oem_vendor",
		"FPVersion": "fp_version",
	},
	fields: map[string]fieldSetter[Info]{
		"fw_version":        func(i *Info, v string) { i.FWVersion = v },
		"fp_count":          func(i *Info, v string) { i.FPCount = atoi(v) },
		"transaction_count": func(i *Info, v string) { i.TransactionCount = atoi(v) },
		"user_count":        func(i *Info, v string) { i.UserCount = atoi(v) },
		"main_time":         func(i *Info, v string) { i.MainTime = v },
		"max_finger_count":  func(i *Info, v string) { i.MaxFingerCount = atoi(v) * fingerCountUnit },
		"lock_fun_on":       func(i *Info, v string) { i.LockFunOn = v },
		"max_att_log_count": func(i *Info, v string) { i.MaxAttLogCount = atoi(v) * attLogCountUnit },
		"device_name":       func(i *Info, v string) { i.DeviceName = v },
		"alg_ver":           func(i *Info, v string) { i.AlgVer = v },
		"flash_size":        func(i *Info, v string) { i.FlashSize = v },
		"free_flash_size":   func(i *Info, v string) { i.FreeFlashSize = v },
		"language":          func(i *Info, v string) { i.Language = v },
		"volume":            func(i *Info, v string) { i.Volume = v },
		"dt_fmt":            func(i *Info, v string) { i.DtFmt = v },
		"ip_address":        func(i *Info, v string) { i.IPAddress = v },
		"is_tft":            func(i *Info, v string) { i.IsTFT = i.IsTFT || IsTruthy(v) },
		"platform": func(i *Info, v string) {
			i.Platform = v
			if strings.Contains(v, tftMarker) {
				i.IsTFT = true
			}
		},
		"brightness": func(i *Info, v string) { i.Brightness = v },
		"backup_dev": func(i *Info, v string) { i.BackupDev = v },
		"oem_vendor": func(i *Info, v string) { i.OEMVendor = v },
		"fp_version": func(i *Info, v string) { i.FPVersion = v },
	},
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// IsTruthy reports whether a device flag token means yes.
func IsTruthy(s string) bool {
	switch s {
	case "1", "Y", "y", "yes", "YES":
		return true
	}
	return false
}

// DecodeInfo decodes the canonical tab-separated Key=Value form. Keys may
// carry a leading "~" and values end at the first "\r".
func DecodeInfo(s string) Info {
	info := Info{Raw: s}
	kvs := parseKeyValues(s)
	for i := range kvs {
		kvs[i].Key = strings.TrimPrefix(kvs[i].Key, "~")
		kvs[i].Value, _, _ = strings.Cut(kvs[i].Value, "\r")
	}
	infoMapping.fill(&info, kvs)
	return info
}

// DecodePlainInfo also accepts the legacy comma list
// "FWVersion,UserCount,FPCount,TransactionCount[,IPAddress[,FPVersion]]".
// Strings with any other number of comma fields are decoded in the
// canonical form, so a bare list of the wrong length yields an empty Info.
func DecodePlainInfo(s string) Info {
	if s == "" {
		return DecodeInfo(s)
	}
	info := DecodeInfo(legacyInfo(s))
	info.Raw = s
	return info
}

func legacyInfo(s string) string {
	flds := strings.Split(s, ",")
	switch {
	case len(flds) == 6:
		return fmt.Sprintf("FWVersion=%s\tUserCount=%s\tFPCount=%s\tTransactionCount=%s\tIPAddress=%s\tFPVersion=%s\t",
			flds[0], flds[1], flds[2], flds[3], flds[4], flds[5])
	case len(flds) == 5:
		return fmt.Sprintf("FWVersion=%s\tUserCount=%s\tFPCount=%s\tTransactionCount=%s\tIPAddress=%s\t",
			flds[0], flds[1], flds[2], flds[3], flds[4])
	case len(flds) == 4:
		return fmt.Sprintf("FWVersion=%s\tUserCount=%s\tFPCount=%s\tTransactionCount=%s\t",
			flds[0], flds[1], flds[2], flds[3])
	}
	return s
}
