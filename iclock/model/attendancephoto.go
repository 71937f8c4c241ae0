package model

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"axiapac.com/iclock/utils"
)

// ErrInvalidPhotoTimestamp is returned when the capture time of a photo
// upload cannot be decoded.
var ErrInvalidPhotoTimestamp = errors.New("invalid attendance photo timestamp")

// Upload command markers found in ATTPHOTO bodies.
const (
	MarkerUploadPhoto = "CMD=uploadphoto"
	MarkerRealUpload  = "CMD=realupload"
)

// AttendancePhotoLog is a photo captured at punch time. PIN is empty for
// photos of failed verifications.
type AttendancePhotoLog struct {
	Timestamped `yaml:",inline"`

	PIN           string  `json:"pin" yaml:"pin"`
	IsUploadPhoto bool    `json:"is_uploadphoto" yaml:"is_uploadphoto"`
	IsRealUpload  bool    `json:"is_realupload" yaml:"is_realupload"`
	Data          Payload `json:"data" yaml:"data"`
	Raw           string  `json:"raw" yaml:"raw"`
}

// Payload is raw image data, encoded as base64 text.
type Payload []byte

func (p Payload) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(p)))
	base64.StdEncoding.Encode(out, p)
	return out, nil
}

// DecodeAttendancePhotoLog decodes a `<timestamp>[-<pin>].<ext>` file name
// and the upload body that follows it.
func DecodeAttendancePhotoLog(name string, body []byte) (AttendancePhotoLog, error) {
	stem, _, _ := strings.Cut(name, ".")

	captured, pin, err := splitPhotoName(stem)
	if err != nil {
		return AttendancePhotoLog{}, err
	}

	photo := AttendancePhotoLog{
		Timestamped: Timestamped{ServerDatetime: captured},
		PIN:         pin,
		Raw:         name + string(body),
	}
	if data, ok := afterMarker(body, MarkerUploadPhoto); ok {
		photo.Data = data
		photo.IsUploadPhoto = true
	}
	if data, ok := afterMarker(body, MarkerRealUpload); ok {
		photo.Data = data
		photo.IsRealUpload = true
	}
	return photo, nil
}

func splitPhotoName(stem string) (DeviceTime, string, error) {
	layouts := []string{utils.DeviceLayout, utils.UnpaddedDeviceLayout, utils.CompactDeviceLayout}
	if t, err := utils.ParseDeviceTime(stem, layouts...); err == nil {
		return DeviceTime{Time: *t}, "", nil
	}
	ts, pin := stem, ""
	if i := strings.LastIndex(stem, "-"); i >= 0 {
		ts, pin = stem[:i], stem[i+1:]
	}
	t, err := utils.ParseDeviceTime(ts, layouts...)
	if err != nil {
		return DeviceTime{}, "", fmt.Errorf("%w: %q", ErrInvalidPhotoTimestamp, stem)
	}
	return DeviceTime{Time: *t}, pin, nil
}

// afterMarker returns the bytes following marker and its one-byte delimiter,
// up to the next occurrence of the same marker.
func afterMarker(body []byte, marker string) (Payload, bool) {
	_, rest, found := bytes.Cut(body, []byte(marker))
	if !found {
		return nil, false
	}
	rest, _, _ = bytes.Cut(rest, []byte(marker))
	if len(rest) > 0 {
		rest = rest[1:]
	}
	return bytes.Clone(rest), true
}
