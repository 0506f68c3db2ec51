package adif

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kilupskalvis/qsolog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(mode string) *models.EnrichedLogEntry {
	return &models.EnrichedLogEntry{
		LogEntry: models.LogEntry{
			ID:        1,
			Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Call:      "K1ABC",
			RSTTX:     "59",
			RSTRX:     "58",
			Band:      "20M",
			Frequency: "14.0",
			Mode:      mode,
			Power:     "100",
			Comments:  "",
			ProfileID: 1,
		},
		Profile: models.OperatorProfile{
			ID: 1,
			ProfileAttributes: models.ProfileAttributes{
				Name: "Home", Call: "W1AW", Grid: "FN31", CQZ: "5", ITUZ: "8", DXCC: "291", Cont: "NA",
			},
		},
	}
}

func fieldMap(fields []Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return m
}

func fieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// ==================== Record Tests ====================

func TestRecordFields_Order(t *testing.T) {
	fields := RecordFields(sampleEntry("USB"))

	assert.Equal(t, []string{
		"CALL", "QSO_DATE", "TIME_ON", "FREQ", "BAND", "FREQ_RX", "BAND_RX", "COMMENT",
		"MODE", "SUBMODE",
		"MY_GRIDSQUARE", "STATION_CALLSIGN", "CQZ", "ITUZ", "DXCC", "CONT", "OPERATOR",
		"RST_SENT", "RST_RCVD", "TX_PWR",
	}, fieldNames(fields))

	fields = RecordFields(sampleEntry("CW"))
	assert.Equal(t, []string{
		"CALL", "QSO_DATE", "TIME_ON", "FREQ", "BAND", "FREQ_RX", "BAND_RX", "COMMENT",
		"MODE",
		"MY_GRIDSQUARE", "STATION_CALLSIGN", "CQZ", "ITUZ", "DXCC", "CONT", "OPERATOR",
		"RST_SENT", "RST_RCVD", "TX_PWR",
	}, fieldNames(fields))
}

func TestRecordFields_Values(t *testing.T) {
	m := fieldMap(RecordFields(sampleEntry("USB")))

	assert.Equal(t, "K1ABC", m["CALL"])
	assert.Equal(t, "20240101", m["QSO_DATE"])
	assert.Equal(t, "120000", m["TIME_ON"])
	assert.Equal(t, "14.0", m["FREQ"])
	assert.Equal(t, "20M", m["BAND"])
	assert.Equal(t, "", m["COMMENT"])
	assert.Equal(t, "SSB", m["MODE"])
	assert.Equal(t, "USB", m["SUBMODE"])
	assert.Equal(t, "FN31", m["MY_GRIDSQUARE"])
	assert.Equal(t, "W1AW", m["STATION_CALLSIGN"])
	assert.Equal(t, "5", m["CQZ"])
	assert.Equal(t, "8", m["ITUZ"])
	assert.Equal(t, "291", m["DXCC"])
	assert.Equal(t, "NA", m["CONT"])
	assert.Equal(t, "W1AW", m["OPERATOR"])
	assert.Equal(t, "59", m["RST_SENT"])
	assert.Equal(t, "58", m["RST_RCVD"])
	assert.Equal(t, "100", m["TX_PWR"])
}

func TestRecordFields_ModeSplit(t *testing.T) {
	tests := []struct {
		mode        string
		wantMode    string
		wantSubmode string
	}{
		{"USB", "SSB", "USB"},
		{"LSB", "SSB", "LSB"},
		{"SSB", "SSB", ""},
		{"CW", "CW", ""},
		{"FT8", "FT8", ""},
		{"usb", "usb", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			fields := RecordFields(sampleEntry(tt.mode))
			m := fieldMap(fields)
			assert.Equal(t, tt.wantMode, m["MODE"])

			sub, ok := m["SUBMODE"]
			if tt.wantSubmode == "" {
				assert.False(t, ok, "no SUBMODE expected")
			} else {
				assert.Equal(t, tt.wantSubmode, sub)
			}
		})
	}
}

func TestRecordFields_ReceiveDuplicatesTransmit(t *testing.T) {
	for _, e := range []*models.EnrichedLogEntry{
		sampleEntry("USB"),
		{LogEntry: models.LogEntry{Frequency: "7.074", Band: "40M"}},
		{LogEntry: models.LogEntry{}},
	} {
		m := fieldMap(RecordFields(e))
		assert.Equal(t, m["FREQ"], m["FREQ_RX"])
		assert.Equal(t, m["BAND"], m["BAND_RX"])
	}
}

func TestRecordFields_NonUTCTimestamp(t *testing.T) {
	e := sampleEntry("CW")
	e.Timestamp = time.Date(2023, 12, 31, 23, 30, 5, 0, time.FixedZone("X", -2*3600))

	m := fieldMap(RecordFields(e))
	assert.Equal(t, "20240101", m["QSO_DATE"])
	assert.Equal(t, "013005", m["TIME_ON"])
}

// ==================== Encode Tests ====================

func TestEncode(t *testing.T) {
	records := [][]Field{
		{{"CALL", "K1ABC"}, {"COMMENT", ""}},
		{{"CALL", "N0CALL"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, HeaderFields(), records))

	want := "ADIF export generated by QSOLOG 1.0.0\n" +
		"<PROGRAMVERSION:5>1.0.0\n" +
		"<PROGRAMID:6>QSOLOG\n" +
		"<EOH>\n\n" +
		"<CALL:5>K1ABC\n" +
		"<COMMENT:0>\n" +
		"<EOR>\n\n" +
		"<CALL:6>N0CALL\n" +
		"<EOR>\n\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, HeaderFields(), nil))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "<EOH>\n\n"))
	assert.NotContains(t, out, "<EOR>")
}

func TestEncode_ByteLengths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, [][]Field{{{"COMMENT", "73 de Zoë"}}}))
	assert.Contains(t, buf.String(), "<COMMENT:10>73 de Zoë\n")
}

func TestEncode_KeepsRecordOrder(t *testing.T) {
	newer := sampleEntry("CW")
	newer.Call = "NEWER"
	older := sampleEntry("CW")
	older.Call = "OLDER"
	older.Timestamp = older.Timestamp.Add(-time.Hour)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, HeaderFields(), [][]Field{RecordFields(newer), RecordFields(older)}))

	out := buf.String()
	assert.Less(t, strings.Index(out, "NEWER"), strings.Index(out, "OLDER"))
	assert.Equal(t, 2, strings.Count(out, "<EOR>"))
}

// ==================== WriteFile Tests ====================

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.adi")

	require.NoError(t, WriteFile(path, HeaderFields(), [][]Field{RecordFields(sampleEntry("USB"))}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<CALL:5>K1ABC")
	assert.Contains(t, out, "<QSO_DATE:8>20240101")
	assert.Contains(t, out, "<TIME_ON:6>120000")
	assert.Contains(t, out, "<MODE:3>SSB")
	assert.Contains(t, out, "<SUBMODE:3>USB")
	assert.Contains(t, out, "<MY_GRIDSQUARE:4>FN31")
	assert.Contains(t, out, "<STATION_CALLSIGN:4>W1AW")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.adi")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, WriteFile(path, HeaderFields(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "log.adi")

	err := WriteFile(path, HeaderFields(), nil)
	assert.ErrorIs(t, err, ErrExportIO)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFile_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0644))

	err := WriteFile(target, HeaderFields(), nil)
	assert.ErrorIs(t, err, ErrExportIO)

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "taken", entries[0].Name())
}
