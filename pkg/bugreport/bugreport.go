// Package bugreport packages log and configuration files into a
// tar.gz archive a user can attach to a bug report, and pulls
// individual members back out of such archives.
package bugreport

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

const (
	reportBaseName = "rpd-bug-report"
	tarSuffix      = ".tar.gz"

	// liveLogName is renamed inside the archive so it sorts with
	// the rotated logs.
	liveLogName       = "rapid-photo-downloader.log"
	archivedLogName   = "rapid-photo-downloader.0.log"
	cacheDirName      = "rapid-photo-downloader"
	configDirName     = "Rapid Photo Downloader"
	defaultConfigName = "Rapid Photo Downloader.conf"
)

// errMemberEscapesArchive is returned when a requested member name
// would resolve outside the archive's directory.
var errMemberEscapesArchive = errors.New("member escapes archive directory")

// TarPath generates a full path for a compressed bug report tar file
// in the user's home directory. The returned filename does not
// already exist: a numeric suffix is added as needed.
func TarPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}

	component := filepath.Join(home, fmt.Sprintf("%s-%s", reportBaseName, time.Now().Format("20060102")))
	name := component + tarSuffix
	for i := 1; ; i++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name, nil
		}
		name = fmt.Sprintf("%s-%d%s", component, i, tarSuffix)
	}
}

// DefaultLogDir is where the program writes its rotating logs.
func DefaultLogDir() string {
	return filepath.Join(xdg.CacheHome, cacheDirName, "log")
}

// DefaultConfigFile is the program's configuration file location.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, configDirName, defaultConfigName)
}

// Create builds a tar.gz at fullTarName containing every file in the
// log directory plus the configuration file. Empty logDir or
// configFile fall back to the xdg default locations. An existing
// archive is never overwritten.
func Create(fullTarName, logDir, configFile string) error {
	if _, err := os.Stat(fullTarName); err == nil {
		logrus.Error("cannot create bug report tarfile, because it already exists")
		return fmt.Errorf("bug report %s already exists", fullTarName)
	}

	if logDir == "" {
		logDir = DefaultLogDir()
	}
	if configFile == "" {
		configFile = DefaultConfigFile()
	}

	logs, err := os.ReadDir(logDir)
	if err != nil {
		logrus.WithError(err).Error("bug report log directory does not exist")
		return fmt.Errorf("cannot read log directory: %w", err)
	}

	f, err := os.OpenFile(fullTarName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("cannot create bug report: %w", err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	err = func() error {
		for _, entry := range logs {
			if entry.IsDir() {
				continue
			}
			arcName := entry.Name()
			if arcName == liveLogName {
				arcName = archivedLogName
			}
			if err := addFile(tw, filepath.Join(logDir, entry.Name()), arcName); err != nil {
				return err
			}
		}
		return addFile(tw, configFile, filepath.Base(configFile))
	}()

	if closeErr := closeAll(tw, gz, f); err == nil {
		err = closeErr
	}
	if err != nil {
		logrus.WithError(err).Error("unexpected error when creating bug report tar file")
		os.Remove(fullTarName)
		return err
	}
	return nil
}

func addFile(tw *tar.Writer, path, arcName string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot add %s to bug report: %w", path, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = arcName
	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("cannot add %s to bug report: %w", path, err)
	}
	return nil
}

func closeAll(tw *tar.Writer, gz *gzip.Writer, f *os.File) error {
	if err := tw.Close(); err != nil {
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExtractMember extracts a single file from a tar.gz archive and
// places it beside the archive. Members inside the archive are
// expected under a top-level directory named after the archive, e.g.
// foo.tar.gz contains foo/member.
func ExtractMember(fullTarPath, memberName string) error {
	tarDir, tarName := filepath.Split(fullTarPath)
	stem := strings.TrimSuffix(tarName, tarSuffix)
	want := stem + "/" + memberName

	dest := filepath.Join(tarDir, memberName)
	if rel, err := filepath.Rel(filepath.Clean(tarDir), filepath.Clean(dest)); err != nil ||
		rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errMemberEscapesArchive
	}

	f, err := os.Open(fullTarPath)
	if err != nil {
		logrus.WithError(err).Errorf("unable to extract %s from tarfile", memberName)
		return fmt.Errorf("cannot open archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("cannot read archive %s: %w", fullTarPath, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("cannot read archive %s: %w", fullTarPath, err)
		}
		name := strings.TrimPrefix(header.Name, "./")
		if name != want || header.Typeflag != tar.TypeReg {
			continue
		}

		out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(header.Mode))
		if err != nil {
			return fmt.Errorf("unable to move %s to new location: %w", memberName, err)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			os.Remove(dest)
			return fmt.Errorf("unable to extract %s: %w", memberName, err)
		}
		return out.Close()
	}

	logrus.Errorf("unable to extract %s from tarfile", memberName)
	return fmt.Errorf("member %s not found in %s", want, fullTarPath)
}
