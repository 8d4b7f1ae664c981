package sink

import (
	"encoding/json"
	"os"

	"buildmon/internal/telemetry"
)

// FileWriter writes snapshots, alerts, and stats to JSONL files.
type FileWriter struct {
	snapFile  *os.File
	alertFile *os.File
	statsFile *os.File
	snapEnc   *json.Encoder
	alertEnc  *json.Encoder
	statsEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. alertPath or statsPath may be empty to
// skip those logs.
func NewFileWriter(snapshotPath, alertPath, statsPath string) (*FileWriter, error) {
	sf, err := os.Create(snapshotPath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{snapFile: sf, snapEnc: json.NewEncoder(sf)}
	if alertPath != "" {
		af, err := os.Create(alertPath)
		if err != nil {
			sf.Close()
			return nil, err
		}
		fw.alertFile = af
		fw.alertEnc = json.NewEncoder(af)
	}
	if statsPath != "" {
		stf, err := os.Create(statsPath)
		if err != nil {
			if fw.alertFile != nil {
				fw.alertFile.Close()
			}
			sf.Close()
			return nil, err
		}
		fw.statsFile = stf
		fw.statsEnc = json.NewEncoder(stf)
	}
	return fw, nil
}

// WriteSnapshot logs the full structured snapshot document.
func (f *FileWriter) WriteSnapshot(s telemetry.Snapshot) error {
	return f.snapEnc.Encode(s)
}

// WriteAlerts logs fired alerts, if enabled.
func (f *FileWriter) WriteAlerts(alerts []telemetry.Alert) error {
	if f.alertEnc == nil {
		return nil
	}
	for _, a := range alerts {
		if err := f.alertEnc.Encode(a); err != nil {
			return err
		}
	}
	return nil
}

// WriteStats logs a stats row, if enabled.
func (f *FileWriter) WriteStats(s telemetry.Stats) error {
	if f.statsEnc == nil {
		return nil
	}
	return f.statsEnc.Encode(s)
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	for _, file := range []*os.File{f.snapFile, f.alertFile, f.statsFile} {
		if file == nil {
			continue
		}
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
