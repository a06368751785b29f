package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/cmdshadow/cmdshadow/internal/audit"
	"github.com/cmdshadow/cmdshadow/internal/redact"
)

// RunRecord is one classified command from one audit run, as stored in
// the JSONL run log.
type RunRecord struct {
	Timestamp   string `json:"timestamp"`
	Group       string `json:"group"`
	Command     string `json:"command"`
	Status      int    `json:"status"`
	StatusLabel string `json:"status_label"`
	Detail      string `json:"detail,omitempty"`
	Worst       int    `json:"worst"`
}

// RunLogger appends run records to a JSONL file.
type RunLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*RunLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &RunLogger{file: file}, nil
}

// LogReport writes one record per result, all stamped with the same
// time so the run can be reassembled from the log later.
func (l *RunLogger) LogReport(rep audit.Report) error {
	stamp := time.Now().UTC().Format(time.RFC3339)
	for _, res := range rep.Results {
		rec := RunRecord{
			Timestamp:   stamp,
			Group:       rep.Group,
			Command:     res.Command,
			Status:      int(res.Status),
			StatusLabel: res.Status.String(),
			Detail:      redact.Scrub(res.Detail),
			Worst:       int(rep.Worst),
		}
		if err := l.log(rec); err != nil {
			return err
		}
	}
	return nil
}

func (l *RunLogger) log(rec RunRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *RunLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
