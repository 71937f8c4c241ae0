package model

import "axiapac.com/iclock/utils"

// AttendanceLog holds the transactions of one ATTLOG body in body order.
type AttendanceLog struct {
	Transactions []Transaction `json:"transactions" yaml:"transactions"`
	Raw          string        `json:"raw" yaml:"raw"`
}

func DecodeAttendanceLog(body string) AttendanceLog {
	return AttendanceLog{
		Transactions: utils.Map(utils.Lines(body), DecodeTransaction),
		Raw:          body,
	}
}
