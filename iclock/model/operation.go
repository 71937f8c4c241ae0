package model

import (
	"strings"

	"axiapac.com/iclock/utils"
)

const operationFields = 7

// Operation is an OPLOG line: an administrative or alarm event.
type Operation struct {
	Timestamped `yaml:",inline"`

	Admin     string        `json:"admin" yaml:"admin"`
	Operation OperationKind `json:"operation" yaml:"operation"`
	Object    string        `json:"object" yaml:"object"`
	Param1    string        `json:"param_1" yaml:"param_1"`
	Param2    string        `json:"param_2" yaml:"param_2"`
	Param3    string        `json:"param_3" yaml:"param_3"`
	Alarm     AlarmKind     `json:"alarm" yaml:"alarm"`
	Raw       string        `json:"raw" yaml:"raw"`
}

// DecodeOperation reads the positional fields operation code, admin,
// timestamp, object, param1, param2 and param3. For alarms the object field
// carries the alarm code.
func DecodeOperation(line string) Operation {
	flds := utils.Pad(strings.Split(line, "\t"), operationFields)
	op := Operation{
		Timestamped: Timestamped{ServerDatetime: parseDeviceTime(flds[2])},
		Operation:   ParseOperation(flds[0]),
		Admin:       flds[1],
		Object:      flds[3],
		Param1:      flds[4],
		Param2:      flds[5],
		Param3:      flds[6],
		Alarm:       AlarmUnknown,
		Raw:         line,
	}
	if op.Operation == OperationAlarm {
		op.Alarm = ParseAlarm(op.Object)
	}
	return op
}

// Line re-encodes the operation without its OPLOG tag.
func (o Operation) Line() string {
	return strings.Join([]string{
		o.Operation.String(),
		o.Admin,
		o.ServerDatetime.String(),
		o.Object,
		o.Param1,
		o.Param2,
		o.Param3,
	}, "\t")
}
