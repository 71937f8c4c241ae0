package model

import (
	"strings"

	"axiapac.com/iclock/utils"
)

const transactionFields = 6

// Transaction is one attendance punch from an ATTLOG body.
type Transaction struct {
	Timestamped `yaml:",inline"`

	PIN        string `json:"pin" yaml:"pin"`
	CheckType  string `json:"check_type" yaml:"check_type"`
	VerifyCode string `json:"verify_code" yaml:"verify_code"`
	WorkCode   string `json:"work_code" yaml:"work_code"`
	Reserved   string `json:"reserved" yaml:"reserved"`
	Raw        string `json:"raw" yaml:"raw"`
}

// DecodeTransaction reads the tab-separated fields pin, timestamp, check
// type, verify code, work code and reserved. Missing trailing fields are
// empty and an unparsable timestamp is left absent.
func DecodeTransaction(line string) Transaction {
	flds := utils.Pad(strings.Split(line, "\t"), transactionFields)
	return Transaction{
		Timestamped: Timestamped{ServerDatetime: parseDeviceTime(flds[1])},
		PIN:         flds[0],
		CheckType:   flds[2],
		VerifyCode:  flds[3],
		WorkCode:    flds[4],
		Reserved:    flds[5],
		Raw:         line,
	}
}

// Line re-encodes the transaction in wire field order.
func (t Transaction) Line() string {
	return strings.Join([]string{
		t.PIN,
		t.ServerDatetime.String(),
		t.CheckType,
		t.VerifyCode,
		t.WorkCode,
		t.Reserved,
	}, "\t")
}
