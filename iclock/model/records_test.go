package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTransaction(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Transaction
	}{
		{
			name: "All fields",
			line: "pin1\t2000-01-01 01:01:05\tct1\tvc1\twc1\tre1",
			want: Transaction{
				Timestamped: Timestamped{ServerDatetime: DeviceTime{time.Date(2000, 1, 1, 1, 1, 5, 0, time.UTC)}},
				PIN:         "pin1",
				CheckType:   "ct1",
				VerifyCode:  "vc1",
				WorkCode:    "wc1",
				Reserved:    "re1",
			},
		},
		{
			name: "Missing trailing fields",
			line: "pin2\t2000-01-01 01:01:10",
			want: Transaction{
				Timestamped: Timestamped{ServerDatetime: DeviceTime{time.Date(2000, 1, 1, 1, 1, 10, 0, time.UTC)}},
				PIN:         "pin2",
			},
		},
		{
			name: "Unpadded timestamp",
			line: "pin4\t2020-1-1 8:00:00\t0",
			want: Transaction{
				Timestamped: Timestamped{ServerDatetime: DeviceTime{time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC)}},
				PIN:         "pin4",
				CheckType:   "0",
			},
		},
		{
			name: "Bad timestamp is absent",
			line: "pin3\tyesterday\t0\t1\t\t",
			want: Transaction{
				PIN:        "pin3",
				CheckType:  "0",
				VerifyCode: "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeTransaction(tt.line)
			tt.want.Raw = tt.line
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	lines := []string{
		"1\t2020-01-01 00:00:00\t0\t1\t0\t0",
		"42\t1999-12-31 23:59:59\t1\t15\t7\tx",
		"\t\t\t\t\t",
	}

	for _, line := range lines {
		assert.Equal(t, line, DecodeTransaction(line).Line())
	}
}

func TestDecodeUser(t *testing.T) {
	line := "PIN=pin1\tName=name1\tPri=14\tPasswd=pass1\tCard=card1\tGrp=1\tTZ=0000000100000000\tVerify=0\tViceCard=vc1"

	got := DecodeUser(line)

	assert.Equal(t, User{
		PIN:        "pin1",
		Name:       "name1",
		Password:   "pass1",
		Card:       "card1",
		Group:      "1",
		TZ:         "0000000100000000",
		Privileges: "14",
		Verify:     "0",
		ViceCard:   "vc1",
		Raw:        line,
	}, got)
}

func TestDecodeUserDropsUnknownKeysInAnyOrder(t *testing.T) {
	a := DecodeUser("PIN=7\tName=Bob\tFace=1\tpassword=x\tRaw=spoof")
	b := DecodeUser("Raw=spoof\tpassword=x\tFace=1\tName=Bob\tPIN=7")

	a.Raw, b.Raw = "", ""
	assert.Equal(t, a, b)
	assert.Equal(t, User{PIN: "7", Name: "Bob", Password: "x"}, a)
}

func TestDecodeFingerprint(t *testing.T) {
	line := "PIN=1\tFID=0\tSize=1024\tValid=1\tTMP=xyz"

	assert.Equal(t, Fingerprint{PIN: "1", FID: "0", TMP: "xyz", Raw: line}, DecodeFingerprint(line))
}

func TestDecodeOperation(t *testing.T) {
	t.Run("Alarm", func(t *testing.T) {
		op := DecodeOperation("3\tadmin\t2020-01-01 00:00:00\t51\tp1\tp2\tp3")

		assert.Equal(t, OperationAlarm, op.Operation)
		assert.Equal(t, AlarmDoorOpenDetected, op.Alarm)
		assert.Equal(t, "51", op.Object)
		assert.Equal(t, "admin", op.Admin)
		assert.Equal(t, []string{"p1", "p2", "p3"}, []string{op.Param1, op.Param2, op.Param3})
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), op.ServerDatetime.Time)
	})

	t.Run("Alarm code ignored for other operations", func(t *testing.T) {
		op := DecodeOperation("4\tadmin\t2020-01-01 00:00:00\t51\t\t\t")

		assert.Equal(t, OperationEnterTheMenu, op.Operation)
		assert.Equal(t, AlarmUnknown, op.Alarm)
	})

	t.Run("Short line is padded", func(t *testing.T) {
		op := DecodeOperation("999\ta1")

		assert.Equal(t, OperationUnknown, op.Operation)
		assert.False(t, op.HasServerDatetime())
		assert.Equal(t, "", op.Param3)
	})
}

func TestDecodeOperationLog(t *testing.T) {
	body := "USER PIN=1\tName=Bob\nOPLOG 3\tadmin\t2020-01-01 00:00:00\t51\tp1\tp2\tp3\nFP PIN=1\tFID=0\tTMP=xyz"

	log := DecodeOperationLog(body)

	require.Len(t, log.Users, 1)
	require.Len(t, log.Operations, 1)
	require.Len(t, log.Fingerprints, 1)
	assert.Equal(t, "1", log.Users[0].PIN)
	assert.Equal(t, "Bob", log.Users[0].Name)
	assert.Equal(t, OperationAlarm, log.Operations[0].Operation)
	assert.Equal(t, AlarmDoorOpenDetected, log.Operations[0].Alarm)
	assert.Equal(t, "51", log.Operations[0].Object)
	assert.Equal(t, Fingerprint{PIN: "1", FID: "0", TMP: "xyz", Raw: "PIN=1\tFID=0\tTMP=xyz"}, log.Fingerprints[0])
	assert.Equal(t, body, log.Raw)
}

func TestDecodeOperationLogKeepsOrderAndDuplicates(t *testing.T) {
	body := strings.Join([]string{
		"USER PIN=2\tName=second",
		"FACE PIN=2\tFID=50",
		"USER PIN=1\tName=first",
		"USER PIN=2\tName=again",
		"",
		"OPLOG 4\ta1\t2000-01-01 01:01:05\to2\tp21\tp22\tp23\r",
		"BIODATA Pin=1",
	}, "\n")

	log := DecodeOperationLog(body)

	require.Len(t, log.Users, 3)
	assert.Equal(t, []string{"second", "first", "again"}, []string{log.Users[0].Name, log.Users[1].Name, log.Users[2].Name})
	assert.Empty(t, log.Fingerprints)
	require.Len(t, log.Operations, 1)
	assert.Equal(t, "p23", log.Operations[0].Param3)
}

func TestDecodeAttendanceLog(t *testing.T) {
	body := "pin1\t2000-01-01 01:01:05\tct1\tvc1\twc1\tre1\npin1\t2000-01-01 01:01:10\tct2\tvc2\twc2\tre2\n"

	log := DecodeAttendanceLog(body)

	require.Len(t, log.Transactions, 2)
	assert.Equal(t, "ct1", log.Transactions[0].CheckType)
	assert.Equal(t, "re2", log.Transactions[1].Reserved)
	assert.Equal(t, time.Date(2000, 1, 1, 1, 1, 10, 0, time.UTC), log.Transactions[1].ServerDatetime.Time)
}

func TestDecodeAttendancePhotoLog(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		body       string
		wantPIN    string
		wantUpload bool
		wantReal   bool
		wantData   string
	}{
		{
			name:       "Upload photo with subject",
			file:       "2020-05-01 10:00:00-7",
			body:       "PIN=x\nCMD=uploadphoto\x01imagebytes",
			wantPIN:    "7",
			wantUpload: true,
			wantData:   "imagebytes",
		},
		{
			name:     "Real upload with extension",
			file:     "20200501100000-12.jpg",
			body:     "CMD=realupload\x00jpeg",
			wantPIN:  "12",
			wantReal: true,
			wantData: "jpeg",
		},
		{
			name:       "Unpadded timestamp",
			file:       "2020-5-1 10:0:0-3.jpg",
			body:       "CMD=uploadphoto\x01img",
			wantPIN:    "3",
			wantUpload: true,
			wantData:   "img",
		},
		{
			name: "Failed capture has no subject",
			file: "2020-05-01 10:00:00.jpg",
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo, err := DecodeAttendancePhotoLog(tt.file, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPIN, photo.PIN)
			assert.Equal(t, time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC), photo.ServerDatetime.Time)
			assert.Equal(t, tt.wantUpload, photo.IsUploadPhoto)
			assert.Equal(t, tt.wantReal, photo.IsRealUpload)
			assert.Equal(t, tt.wantData, string(photo.Data))
			assert.Equal(t, tt.file+tt.body, photo.Raw)
		})
	}
}

func TestDecodeAttendancePhotoLogBothMarkers(t *testing.T) {
	photo, err := DecodeAttendancePhotoLog("2020-05-01 10:00:00-7", []byte("CMD=uploadphoto\x01a\nCMD=realupload\x01b"))

	require.NoError(t, err)
	assert.True(t, photo.IsUploadPhoto)
	assert.True(t, photo.IsRealUpload)
	assert.Equal(t, "b", string(photo.Data))
}

func TestDecodeAttendancePhotoLogRepeatedMarker(t *testing.T) {
	photo, err := DecodeAttendancePhotoLog("2020-05-01 10:00:00-7", []byte("CMD=uploadphoto\x01first\nCMD=uploadphoto\x01second"))

	require.NoError(t, err)
	assert.True(t, photo.IsUploadPhoto)
	assert.False(t, photo.IsRealUpload)
	assert.Equal(t, "first\n", string(photo.Data))
}

func TestDecodeAttendancePhotoLogInvalidTimestamp(t *testing.T) {
	for _, file := range []string{"", "7.jpg", "2020-13-45 99:00:00-7", "not-a-date"} {
		t.Run(file, func(t *testing.T) {
			_, err := DecodeAttendancePhotoLog(file, []byte("CMD=uploadphoto\x01x"))
			assert.ErrorIs(t, err, ErrInvalidPhotoTimestamp)
		})
	}
}

func TestCorrectDatetime(t *testing.T) {
	tr := DecodeTransaction("1\t2020-01-01 08:30:15")
	loc := time.FixedZone("UTC+10", 10*60*60)

	got, ok := tr.CorrectDatetime(loc)

	require.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 1, 8, 30, 15, 0, loc), got)
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, loc, got.Location())

	_, ok = DecodeTransaction("1\t").CorrectDatetime(loc)
	assert.False(t, ok)
}
