// Package packager bundles the generated Webflow CSV files into a single zip
// archive for upload or hand-off.
package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/f4ah6o/wp2webflow-go/internal/logging"
)

// Packager creates zip bundles.
type Packager struct {
	logger logging.Logger
}

// New creates a Packager. A nil logger discards messages.
func New(logger logging.Logger) *Packager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Packager{logger: logger}
}

// Package writes files into a zip archive at outputPath, each stored under its
// base name with DEFLATE compression. Two files with the same base name are
// rejected. It returns outputPath.
func (p *Packager) Package(files []string, outputPath string) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("nothing to package")
	}

	seen := make(map[string]string, len(files))
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", file, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s is a directory", file)
		}
		name := filepath.Base(file)
		if prev, ok := seen[name]; ok {
			return "", fmt.Errorf("duplicate archive entry %q for %s and %s", name, prev, file)
		}
		seen[name] = file
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	p.logger.Info("packaging", "files", len(files), "output", outputPath)

	zipFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create zip file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	for _, file := range files {
		if err := addFile(zipWriter, file); err != nil {
			zipWriter.Close()
			return "", fmt.Errorf("failed to package %s: %w", file, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to finish zip file: %w", err)
	}
	if err := zipFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close zip file: %w", err)
	}

	p.logger.Info("bundle written", "output", outputPath)
	return outputPath, nil
}

func addFile(zw *zip.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(writer, file)
	return err
}
