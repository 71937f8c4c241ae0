package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"axiapac.com/iclock/iclock/model"
	"axiapac.com/iclock/iclock/request"
	"axiapac.com/iclock/utils"
	"github.com/xuri/excelize/v2"
)

// Sheet names, in output order.
const (
	SheetDevices      = "devices"
	SheetDaily        = "daily"
	SheetTransactions = "transactions"
	SheetOperations   = "operations"
	SheetUsers        = "users"
	SheetFingerprints = "fingerprints"
	SheetPhotos       = "photos"
)

var headers = map[string][]string{
	SheetDevices:      {"sn", "push_version", "fw_version", "device_name", "platform", "is_tft", "user_count", "fp_count", "transaction_count", "max_att_log_count", "max_finger_count", "ip_address"},
	SheetDaily:        {"sn", "pin", "date", "from", "to", "punches"},
	SheetTransactions: {"sn", "pin", "server_datetime", "check_type", "verify_code", "work_code", "reserved"},
	SheetOperations:   {"sn", "operation", "admin", "server_datetime", "object", "param_1", "param_2", "param_3", "alarm"},
	SheetUsers:        {"sn", "pin", "name", "privileges", "card", "group", "tz", "verify", "vice_card"},
	SheetFingerprints: {"sn", "pin", "fid", "template_length"},
	SheetPhotos:       {"sn", "pin", "server_datetime", "is_uploadphoto", "is_realupload", "size"},
}

var order = []string{SheetDevices, SheetDaily, SheetTransactions, SheetOperations, SheetUsers, SheetFingerprints, SheetPhotos}

type Sheet struct {
	Name string
	Rows [][]string
}

// Report flattens decoded requests into tabular rows. Server timestamps are
// corrected into Location.
type Report struct {
	Location     *time.Location
	rows         map[string][][]string
	transactions map[string][]model.Transaction
	serials      []string
}

func New(loc *time.Location) *Report {
	if loc == nil {
		loc = time.UTC
	}
	return &Report{Location: loc, rows: map[string][][]string{}, transactions: map[string][]model.Transaction{}}
}

func (r *Report) add(sheet string, row ...string) {
	r.rows[sheet] = append(r.rows[sheet], row)
}

func (r *Report) timestamp(t model.Timestamped) string {
	corrected, ok := t.CorrectDatetime(r.Location)
	if !ok {
		return ""
	}
	return corrected.Format(time.RFC3339)
}

func (r *Report) AddGetRequest(req request.GetRequest) {
	i := req.Info
	r.add(SheetDevices, req.SN, req.PushVersion, i.FWVersion, i.DeviceName, i.Platform,
		utils.FormatBoolean(i.IsTFT, "Y", "N"), strconv.Itoa(i.UserCount), strconv.Itoa(i.FPCount),
		strconv.Itoa(i.TransactionCount), strconv.Itoa(i.MaxAttLogCount), strconv.Itoa(i.MaxFingerCount), i.IPAddress)
}

func (r *Report) AddCdataRequest(req request.CdataRequest) {
	sn := req.SN
	if log := req.AttendanceLog; log != nil {
		if _, seen := r.transactions[sn]; !seen {
			r.serials = append(r.serials, sn)
		}
		r.transactions[sn] = append(r.transactions[sn], log.Transactions...)
		for _, t := range log.Transactions {
			r.add(SheetTransactions, sn, t.PIN, r.timestamp(t.Timestamped), t.CheckType, t.VerifyCode, t.WorkCode, t.Reserved)
		}
	}
	if log := req.OperationLog; log != nil {
		for _, o := range log.Operations {
			r.add(SheetOperations, sn, o.Operation.Name(), o.Admin, r.timestamp(o.Timestamped), o.Object, o.Param1, o.Param2, o.Param3, o.Alarm.Name())
		}
		for _, u := range log.Users {
			r.add(SheetUsers, sn, u.PIN, u.Name, u.Privileges, u.Card, u.Group, u.TZ, u.Verify, u.ViceCard)
		}
		for _, f := range log.Fingerprints {
			r.add(SheetFingerprints, sn, f.PIN, f.FID, strconv.Itoa(len(f.TMP)))
		}
	}
	if p := req.AttendancePhotoLog; p != nil {
		r.add(SheetPhotos, sn, p.PIN, r.timestamp(p.Timestamped),
			utils.FormatBoolean(p.IsUploadPhoto, "Y", "N"), utils.FormatBoolean(p.IsRealUpload, "Y", "N"), strconv.Itoa(len(p.Data)))
	}
}

// Daily groups every transaction added so far into first and last punches.
func (r *Report) Daily() []DailyRecord {
	var records []DailyRecord
	for _, sn := range r.serials {
		records = append(records, GroupTransactions(sn, r.transactions[sn], r.Location)...)
	}
	return records
}

func (r *Report) dailyRows() [][]string {
	return utils.Map(r.Daily(), func(d DailyRecord) []string {
		return []string{d.SN, d.PIN, d.Date, d.From.Format(time.RFC3339), d.To.Format(time.RFC3339), strconv.Itoa(len(d.Transactions))}
	})
}

// Sheets returns the non-empty sheets, each starting with its header row.
func (r *Report) Sheets() []Sheet {
	var sheets []Sheet
	for _, name := range order {
		rows := r.rows[name]
		if name == SheetDaily {
			rows = r.dailyRows()
		}
		if len(rows) == 0 {
			continue
		}
		sheets = append(sheets, Sheet{Name: name, Rows: append([][]string{headers[name]}, rows...)})
	}
	return sheets
}

// WriteCSV writes every sheet as one CSV stream, prefixing each row with its
// sheet name. Rows are padded to the widest sheet so every record has the
// same number of fields.
func (r *Report) WriteCSV(w io.Writer) error {
	var rows [][]string
	width := 0
	for _, sheet := range r.Sheets() {
		for _, row := range sheet.Rows {
			rows = append(rows, append([]string{sheet.Name}, row...))
			width = max(width, len(row)+1)
		}
	}
	return utils.WriteCSV(w, utils.Map(rows, func(row []string) []string {
		return utils.Pad(row, width)
	}))
}

func (r *Report) WriteWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := r.Sheets()
	if len(sheets) == 0 {
		sheets = []Sheet{{Name: SheetTransactions, Rows: [][]string{headers[SheetTransactions]}}}
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
		}

		for n, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, n+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", sheet.Name, n+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
