package utils

import (
	"fmt"
	"strconv"
	"time"
)

// DeviceLayout is the timestamp layout used throughout the push protocol.
const DeviceLayout = "2006-01-02 15:04:05"

// UnpaddedDeviceLayout accepts one or two digits in every field after the
// year, as some firmware drops the leading zeros.
const UnpaddedDeviceLayout = "2006-1-2 15:4:5"

// CompactDeviceLayout is emitted by newer firmware in photo file names.
const CompactDeviceLayout = "20060102150405"

func FixedOffset(seconds int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", seconds/3600), seconds)
}

// ParseDeviceTime parses s as a naive timestamp in the first layout that
// matches. Without layouts DeviceLayout and UnpaddedDeviceLayout are tried.
func ParseDeviceTime(s string, layouts ...string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}
	if len(layouts) == 0 {
		layouts = []string{DeviceLayout, UnpaddedDeviceLayout}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("failed to parse time: %v", s)
}

// LoadLocation accepts an IANA zone name or a fixed offset in seconds
// east of UTC ("36000").
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	if seconds, err := strconv.Atoi(name); err == nil {
		return FixedOffset(seconds), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
