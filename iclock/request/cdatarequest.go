package request

import (
	"fmt"
	"net/http"

	"axiapac.com/iclock/iclock/model"
)

// CdataRequest is a request to /iclock/cdata. At most one of the log
// fields is set, matching Table.
type CdataRequest struct {
	Device `yaml:",inline"`

	Method             string                    `json:"method" yaml:"method"`
	PIN                string                    `json:"pin" yaml:"pin"`
	Save               bool                      `json:"save" yaml:"save"`
	Body               string                    `json:"body" yaml:"body"`
	Stamp              string                    `json:"stamp" yaml:"stamp"`
	OperationStamp     string                    `json:"operation_stamp" yaml:"operation_stamp"`
	Table              model.Table               `json:"table" yaml:"table"`
	AttendanceLog      *model.AttendanceLog      `json:"attendance_log,omitempty" yaml:"attendance_log,omitempty"`
	OperationLog       *model.OperationLog       `json:"operation_log,omitempty" yaml:"operation_log,omitempty"`
	AttendancePhotoLog *model.AttendancePhotoLog `json:"attendance_photo_log,omitempty" yaml:"attendance_photo_log,omitempty"`
}

// DecodeCdataRequest decodes a cdata request. The only error is an
// ATTPHOTO upload whose file name carries no valid capture time.
func DecodeCdataRequest(r *Request) (CdataRequest, error) {
	req := CdataRequest{
		Device: deviceOf(r),
		Method: r.Method,
	}

	if r.Params.Has("action") {
		return req, nil
	}

	switch r.Method {
	case http.MethodGet:
		req.PIN = r.Params.Get("PIN", "")
		req.Save = model.IsTruthy(r.Params.Get("save", ""))
	case http.MethodPost:
		req.Stamp = r.Params.Get("Stamp", "")
		req.OperationStamp = r.Params.Get("OpStamp", "")
		req.Table = model.ParseTable(r.Params.Get("table", ""))
		req.Body = DecodeBody(r.Body)

		switch req.Table {
		case model.TableOperLog:
			log := model.DecodeOperationLog(req.Body)
			req.OperationLog = &log
		case model.TableAttLog:
			log := model.DecodeAttendanceLog(req.Body)
			req.AttendanceLog = &log
		case model.TableAttPhoto:
			photo, err := model.DecodeAttendancePhotoLog(r.Params.Get("PIN", ""), r.Body)
			if err != nil {
				return CdataRequest{}, fmt.Errorf("failed to decode %s upload from %s: %w", req.Table, req.SN, err)
			}
			req.AttendancePhotoLog = &photo
		}
	}
	return req, nil
}
