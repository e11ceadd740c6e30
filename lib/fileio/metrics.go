package fileio

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"io"
)

// names of the operations as used in logs and metrics
const (
	opReadYAML          = "read_yaml"
	opCreateDirectories = "create_directories"
	opSaveJSON          = "save_json"
	opLoadJSON          = "load_json"
	opSaveBin           = "save_bin"
	opLoadBin           = "load_bin"
	opInspectBin        = "inspect_bin"
	opGetSize           = "get_size"
)

// ioMetrics holds the counters of all file helpers in the process
var ioMetrics = metrics.NewSet()

var (
	bytesWritten = ioMetrics.NewCounter("mlio_bytes_written_total")
	bytesRead    = ioMetrics.NewCounter("mlio_bytes_read_total")
)

// record counts a finished operation
func record(op string, err error) {
	ioMetrics.GetOrCreateCounter(fmt.Sprintf(`mlio_ops_total{op=%q}`, op)).Inc()
	if err != nil {
		ioMetrics.GetOrCreateCounter(fmt.Sprintf(`mlio_errors_total{op=%q}`, op)).Inc()
	}
}

// WriteMetrics writes all counters of the file helpers in Prometheus text format to w
func WriteMetrics(w io.Writer) {
	ioMetrics.WritePrometheus(w)
}
