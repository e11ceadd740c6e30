package fileio

import (
	"os"
)

// CreateDirectories creates all directories including missing parents. Existing directories
// are not an error. If verbose is set, every created directory is logged.
//
// All paths are validated before the first directory is created. Filesystem errors are
// returned unchanged and stop the creation of the remaining directories
func (f *Files) CreateDirectories(paths []string, verbose bool) (err error) {
	defer func() { record(opCreateDirectories, err) }()

	for i, path := range paths {
		if path == "" {
			return invalidArgument(opCreateDirectories, "path %d must not be empty", i)
		}
	}

	for _, path := range paths {
		if err = os.MkdirAll(path, f.config.DirPerm); err != nil {
			return err
		}
		if verbose {
			f.log.Infof("created directory at: %s", path)
		}
	}
	return nil
}
