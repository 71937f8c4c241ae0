package report

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"axiapac.com/iclock/iclock/request"
	"axiapac.com/iclock/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func decodeCdata(t *testing.T, url, body string) request.CdataRequest {
	t.Helper()
	req, err := request.DecodeCdataRequest(request.Parse(http.MethodPost, url, nil, []byte(body)))
	require.NoError(t, err)
	return req
}

func sampleReport(t *testing.T) *Report {
	r := New(utils.FixedOffset(10 * 60 * 60))
	r.AddCdataRequest(decodeCdata(t, "/iclock/cdata?SN=CKJ1&table=ATTLOG",
		"1\t2021-03-04 05:06:07\t0\t1\t0\t0\n2\tbad\t1\t1\t0\t0"))
	r.AddCdataRequest(decodeCdata(t, "/iclock/cdata?SN=CKJ1&table=OPERLOG",
		"OPLOG 3\t0\t2021-03-04 05:06:07\t55\t0\t0\t0\nUSER PIN=1\tName=Ann\tPri=14\nFP PIN=1\tFID=0\tTMP=abcd"))
	r.AddGetRequest(request.DecodeGetRequest(request.Parse(http.MethodGet, "/iclock/getrequest?SN=CKJ1&INFO=6.60,5,2,9", nil, nil)))
	return r
}

func TestSheets(t *testing.T) {
	sheets := sampleReport(t).Sheets()

	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{SheetDevices, SheetDaily, SheetTransactions, SheetOperations, SheetUsers, SheetFingerprints}, names)

	assert.Equal(t, []string{"CKJ1", "1", "2021-03-04", "2021-03-04T05:06:07+10:00", "2021-03-04T05:06:07+10:00", "1"}, sheets[1].Rows[1])

	transactions := sheets[2].Rows
	require.Len(t, transactions, 3)
	assert.Equal(t, headers[SheetTransactions], transactions[0])
	assert.Equal(t, []string{"CKJ1", "1", "2021-03-04T05:06:07+10:00", "0", "1", "0", "0"}, transactions[1])
	assert.Equal(t, "", transactions[2][2])

	assert.Equal(t, []string{"CKJ1", "alarm", "0", "2021-03-04T05:06:07+10:00", "55", "0", "0", "0", "machine_been_broken"}, sheets[3].Rows[1])
	assert.Equal(t, []string{"CKJ1", "1", "0", "4"}, sheets[5].Rows[1])
	assert.Equal(t, "6.60", sheets[0].Rows[1][2])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport(t).WriteCSV(&buf))

	rows, err := utils.ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{SheetDevices, "sn", "push_version"}, rows[0][:3])
	assert.Equal(t, []string{SheetDaily, "CKJ1", "1"}, rows[3][:3])
	assert.Equal(t, []string{SheetTransactions, "CKJ1", "1"}, rows[5][:3])

	width := len(headers[SheetDevices]) + 1
	for i, row := range rows {
		assert.Len(t, row, width, "row %d", i)
	}
	assert.Equal(t, []string{"", "", "", "", ""}, rows[5][8:])
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport(t).WriteWorkbook(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetDevices, SheetDaily, SheetTransactions, SheetOperations, SheetUsers, SheetFingerprints}, f.GetSheetList())

	rows, err := f.GetRows(SheetUsers)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"CKJ1", "1", "Ann", "14"}, rows[1][:4])
}

func TestWriteWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(time.UTC).WriteWorkbook(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetTransactions}, f.GetSheetList())
}
