package request

import "axiapac.com/iclock/iclock/model"

// Device identifies the terminal that sent a request.
type Device struct {
	SN          string `json:"sn" yaml:"sn"`
	PushVersion string `json:"push_version" yaml:"push_version"`
}

func deviceOf(r *Request) Device {
	return Device{SN: r.Serial(), PushVersion: r.PushVersion()}
}

// GetRequest is a capability announcement sent to /iclock/getrequest.
type GetRequest struct {
	Device `yaml:",inline"`

	Info model.Info `json:"info" yaml:"info"`
}

func DecodeGetRequest(r *Request) GetRequest {
	return GetRequest{
		Device: deviceOf(r),
		Info:   model.DecodePlainInfo(r.Params.Get("INFO", "")),
	}
}
