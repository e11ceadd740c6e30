// Package fileio implements the file helpers of mlio: loading yaml configuration files,
// creating directory trees, saving and loading json documents and binary artifacts and
// reporting file sizes.
//
// All helpers are methods of Files, which carries the injected logging handle and the
// configuration. The helpers are independent of each other and do not keep state
// between calls. Every successful call emits one informational log line naming the
// operation and the path.
//
// Error Handling:
//
//   - ErrInvalidArgument: an argument violates the contract of the operation (empty path,
//     nil data, a load target that is not a pointer). Returned before any file is touched.
//   - ErrEmptyConfig: the yaml document is empty or not a mapping.
//   - ErrExtraData: a yaml or json file holds more than one document.
//   - Everything else (missing files, permissions, malformed documents, corrupt artifacts,
//     values the serializer cannot handle) is returned unchanged, so callers can use
//     errors.Is(err, fs.ErrNotExist) or errors.As with the original error types.
//
// Nothing is retried and there is no partial success: an operation either completes or
// returns an error. Values are encoded before a file is opened for writing, so an encoding
// error never leaves a truncated file behind.
//
// Metrics:
//
//	Every operation is counted in mlio_ops_total{op="..."} and, on failure, in
//	mlio_errors_total{op="..."}. mlio_bytes_written_total and mlio_bytes_read_total
//	count the bytes moved. WriteMetrics prints them in Prometheus text format.
//
// Usage:
//
//	files, err := fileio.New(common.GetLogger(common.LoggerFileIO), common.DefaultConfig())
//	cfg, err := files.ReadYAML("config/config.yaml")
//	err = files.CreateDirectories([]string{cfg.GetString("artifacts_root")}, true)
//	err = files.SaveJSON("artifacts/metrics.json", map[string]any{"rmse": 0.61})
//	err = files.SaveBin(model, "artifacts/model.bin")
//	size, err := files.GetSize("artifacts/model.bin") // "~12 KB"
package fileio
