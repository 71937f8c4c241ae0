package model

import (
	"encoding/json"
	"time"

	"axiapac.com/iclock/utils"
)

// DeviceTime is a naive device timestamp. The zero value means absent.
type DeviceTime struct {
	time.Time
}

func parseDeviceTime(s string) DeviceTime {
	t, err := utils.ParseDeviceTime(s)
	if err != nil {
		return DeviceTime{}
	}
	return DeviceTime{Time: *t}
}

func (d DeviceTime) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format(utils.DeviceLayout)
}

func (d DeviceTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d DeviceTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Timestamped is embedded by records that carry a server timestamp.
type Timestamped struct {
	ServerDatetime DeviceTime `json:"server_datetime" yaml:"server_datetime"`
}

func (t Timestamped) HasServerDatetime() bool {
	return !t.ServerDatetime.IsZero()
}

// CorrectDatetime rebuilds the naive timestamp with the same wall clock
// fields in loc. It reports false when no timestamp was decoded.
func (t Timestamped) CorrectDatetime(loc *time.Location) (time.Time, bool) {
	if !t.HasServerDatetime() {
		return time.Time{}, false
	}
	s := t.ServerDatetime.Time
	return time.Date(s.Year(), s.Month(), s.Day(), s.Hour(), s.Minute(), s.Second(), 0, loc), true
}
