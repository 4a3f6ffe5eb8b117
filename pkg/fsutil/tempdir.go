package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DefaultTempDirPrefix is prepended to generated temporary download
// directories unless the caller overrides or suppresses it.
const DefaultTempDirPrefix = "rpd-tmp-"

// TempDirOptions controls CreateTempDir.
type TempDirOptions struct {
	// Folder is the directory in which the temporary directory is
	// created. Empty means the system temporary directory.
	Folder string

	// Prefix is prepended to the generated name. Empty means
	// DefaultTempDirPrefix unless ForceNoPrefix is set.
	Prefix string

	// ForceNoPrefix suppresses any prefix.
	ForceNoPrefix bool

	// FixedName creates the directory under this exact name,
	// appending _1, _2, ... when it already exists.
	FixedName string
}

// CreateTempDir creates a temporary directory and logs errors.
// It returns the full path of the created directory.
func CreateTempDir(opts TempDirOptions) (string, error) {
	if opts.FixedName != "" {
		return createNamedTempDir(opts.Folder, opts.FixedName)
	}

	prefix := opts.Prefix
	if prefix == "" && !opts.ForceNoPrefix {
		prefix = DefaultTempDirPrefix
	}
	tempDir, err := os.MkdirTemp(opts.Folder, prefix)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create temporary directory in %s", opts.Folder)
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	return tempDir, nil
}

func createNamedTempDir(folder, name string) (string, error) {
	if folder == "" {
		folder = os.TempDir()
	}
	var path string
	for i := range 10 {
		if i == 0 {
			path = filepath.Join(folder, name)
		} else {
			path = filepath.Join(folder, fmt.Sprintf("%s_%d", name, i))
		}
		err := os.Mkdir(path, 0o700)
		if err == nil {
			return path, nil
		}
		if !os.IsExist(err) {
			logrus.WithError(err).Errorf("failed to create temporary directory %s", path)
			return "", fmt.Errorf("failed to create temporary directory %s: %w", path, err)
		}
		logrus.Warnf("failed to create temporary directory %s", path)
	}
	return "", fmt.Errorf("failed to create temporary directory %s: all candidate names taken", path)
}

// DownloadTempDirs is the pair of temporary directories a download
// session writes photos and videos into.
type DownloadTempDirs struct {
	PhotoTempDir string
	VideoTempDir string
}

// CreateDownloadTempDirs creates a temporary directory inside each
// download folder. An empty folder is skipped and leaves the
// corresponding field empty.
func CreateDownloadTempDirs(photoDownloadFolder, videoDownloadFolder string) (DownloadTempDirs, error) {
	var dirs DownloadTempDirs
	var err error
	if photoDownloadFolder != "" {
		dirs.PhotoTempDir, err = CreateTempDir(TempDirOptions{Folder: photoDownloadFolder})
		if err != nil {
			return dirs, err
		}
		logrus.Debugf("photo temporary directory: %s", dirs.PhotoTempDir)
	}
	if videoDownloadFolder != "" {
		dirs.VideoTempDir, err = CreateTempDir(TempDirOptions{Folder: videoDownloadFolder})
		if err != nil {
			return dirs, err
		}
		logrus.Debugf("video temporary directory: %s", dirs.VideoTempDir)
	}
	return dirs, nil
}
