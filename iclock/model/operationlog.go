package model

import (
	"strings"

	"axiapac.com/iclock/utils"
)

// Line tags of an OPERLOG body.
const (
	TagOperation   = "OPLOG"
	TagUser        = "USER"
	TagFingerprint = "FP"
)

// OperationLog holds the records demultiplexed from one OPERLOG body, each
// list in body order.
type OperationLog struct {
	Users        []User        `json:"users" yaml:"users"`
	Fingerprints []Fingerprint `json:"fingerprints" yaml:"fingerprints"`
	Operations   []Operation   `json:"operations" yaml:"operations"`
	Raw          string        `json:"raw" yaml:"raw"`
}

// DecodeOperationLog routes each "<TAG> <rest>" line to its record decoder.
// Lines with other tags are dropped.
func DecodeOperationLog(body string) OperationLog {
	log := OperationLog{Raw: body}
	for _, line := range utils.Lines(body) {
		tag, rest, _ := strings.Cut(line, " ")

		if tag == TagOperation {
			log.Operations = append(log.Operations, DecodeOperation(rest))
		}
		if tag == TagUser {
			log.Users = append(log.Users, DecodeUser(rest))
		} else if tag == TagFingerprint {
			log.Fingerprints = append(log.Fingerprints, DecodeFingerprint(rest))
		}
	}
	return log
}
