// Package adif encodes logged contacts in the ADIF ADI text format.
//
// Each field is written as <NAME:LENGTH>VALUE where LENGTH is the byte length
// of VALUE. A header block terminated by <EOH> comes first, followed by one
// block per record terminated by <EOR>.
package adif

import (
	"bufio"
	"io"
	"strconv"

	"github.com/kilupskalvis/qsolog/internal/models"
)

// Header values identifying the exporting program
const (
	ProgramID      = "QSOLOG"
	ProgramVersion = "1.0.0"
)

// Field names
const (
	FieldProgramVersion  = "PROGRAMVERSION"
	FieldProgramID       = "PROGRAMID"
	FieldCall            = "CALL"
	FieldQSODate         = "QSO_DATE"
	FieldTimeOn          = "TIME_ON"
	FieldFreq            = "FREQ"
	FieldBand            = "BAND"
	FieldFreqRX          = "FREQ_RX"
	FieldBandRX          = "BAND_RX"
	FieldComment         = "COMMENT"
	FieldMode            = "MODE"
	FieldSubmode         = "SUBMODE"
	FieldMyGridsquare    = "MY_GRIDSQUARE"
	FieldStationCallsign = "STATION_CALLSIGN"
	FieldCQZ             = "CQZ"
	FieldITUZ            = "ITUZ"
	FieldDXCC            = "DXCC"
	FieldCont            = "CONT"
	FieldOperator        = "OPERATOR"
	FieldRSTSent         = "RST_SENT"
	FieldRSTRcvd         = "RST_RCVD"
	FieldTXPwr           = "TX_PWR"
)

const (
	endOfHeader = "<EOH>"
	endOfRecord = "<EOR>"
	preamble    = "ADIF export generated by " + ProgramID + " " + ProgramVersion
)

// Field is a single named value in a header or record
type Field struct {
	Name  string
	Value string
}

// HeaderFields returns the fixed file header
func HeaderFields() []Field {
	return []Field{
		{Name: FieldProgramVersion, Value: ProgramVersion},
		{Name: FieldProgramID, Value: ProgramID},
	}
}

// RecordFields maps an enriched log entry to its ordered record fields.
// Receive frequency and band are not tracked separately, so FREQ_RX and
// BAND_RX repeat the transmit values.
func RecordFields(e *models.EnrichedLogEntry) []Field {
	ts := e.Timestamp.UTC()

	fields := make([]Field, 0, 22)
	fields = append(fields,
		Field{FieldCall, e.Call},
		Field{FieldQSODate, ts.Format("20060102")},
		Field{FieldTimeOn, ts.Format("150405")},
		Field{FieldFreq, e.Frequency},
		Field{FieldBand, e.Band},
		Field{FieldFreqRX, e.Frequency},
		Field{FieldBandRX, e.Band},
		Field{FieldComment, e.Comments},
	)
	fields = append(fields, modeFields(e.Mode)...)
	fields = append(fields,
		Field{FieldMyGridsquare, e.Profile.Grid},
		Field{FieldStationCallsign, e.Profile.Call},
		Field{FieldCQZ, e.Profile.CQZ},
		Field{FieldITUZ, e.Profile.ITUZ},
		Field{FieldDXCC, e.Profile.DXCC},
		Field{FieldCont, e.Profile.Cont},
		Field{FieldOperator, e.Profile.Call},
		Field{FieldRSTSent, e.RSTTX},
		Field{FieldRSTRcvd, e.RSTRX},
		Field{FieldTXPwr, e.Power},
	)
	return fields
}

// modeFields splits sideband modes into MODE=SSB plus a SUBMODE
func modeFields(mode string) []Field {
	switch mode {
	case "USB", "LSB":
		return []Field{{FieldMode, "SSB"}, {FieldSubmode, mode}}
	default:
		return []Field{{FieldMode, mode}}
	}
}

// Encode writes the header followed by every record, in the order given
func Encode(w io.Writer, header []Field, records [][]Field) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(preamble)
	bw.WriteByte('\n')
	for _, f := range header {
		writeField(bw, f)
		bw.WriteByte('\n')
	}
	bw.WriteString(endOfHeader)
	bw.WriteString("\n\n")

	for _, rec := range records {
		for _, f := range rec {
			writeField(bw, f)
			bw.WriteByte('\n')
		}
		bw.WriteString(endOfRecord)
		bw.WriteString("\n\n")
	}

	return bw.Flush()
}

func writeField(bw *bufio.Writer, f Field) {
	bw.WriteByte('<')
	bw.WriteString(f.Name)
	bw.WriteByte(':')
	bw.WriteString(strconv.Itoa(len(f.Value)))
	bw.WriteByte('>')
	bw.WriteString(f.Value)
}
