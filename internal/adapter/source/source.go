package source

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// chatFileName is what the application calls the transcript inside an
// export.
const chatFileName = "_chat.txt"

// Loader resolves export paths into transcripts. It accepts a .zip
// archive (extracted to a temp dir), an already extracted directory, or
// the chat .txt file itself.
type Loader struct {
	log *zap.Logger

	// tempDir holds the extraction dir for zip inputs (set after Load).
	tempDir string
}

func New(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

func (l *Loader) Load(path string) (*domain.Transcript, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("locating export: %w", err)
	}

	switch {
	case info.IsDir():
		txt, err := findChatFile(path)
		if err != nil {
			return nil, err
		}
		lines, err := readLines(txt)
		if err != nil {
			return nil, err
		}
		return &domain.Transcript{Dir: path, Lines: lines}, nil

	case strings.EqualFold(filepath.Ext(path), ".zip"):
		tempDir, err := os.MkdirTemp("", "whatsmap-*")
		if err != nil {
			return nil, fmt.Errorf("creating temp dir: %w", err)
		}
		l.tempDir = tempDir
		l.log.Debug("extracting export", zap.String("zip", path), zap.String("dir", tempDir))
		if err := extractZip(path, tempDir); err != nil {
			return nil, fmt.Errorf("extracting zip: %w", err)
		}
		txt, err := findChatFile(tempDir)
		if err != nil {
			return nil, err
		}
		lines, err := readLines(txt)
		if err != nil {
			return nil, err
		}
		return &domain.Transcript{Dir: tempDir, Lines: lines}, nil

	default:
		lines, err := readLines(path)
		if err != nil {
			return nil, err
		}
		return &domain.Transcript{Dir: filepath.Dir(path), Lines: lines}, nil
	}
}

// Cleanup removes the temporary extraction directory, if any.
func (l *Loader) Cleanup() {
	if l.tempDir != "" {
		_ = os.RemoveAll(l.tempDir)
		l.tempDir = ""
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		// Exports written on Windows carry CRLF line endings.
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	return lines, nil
}

// findChatFile locates the transcript inside an export directory:
// _chat.txt when present, otherwise the first .txt entry.
func findChatFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var firstTxt string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if name == chatFileName {
			return filepath.Join(dir, e.Name()), nil
		}
		if firstTxt == "" && strings.HasSuffix(name, ".txt") {
			firstTxt = filepath.Join(dir, e.Name())
		}
	}
	if firstTxt != "" {
		return firstTxt, nil
	}
	return "", fmt.Errorf("no .txt chat file found in export")
}

func extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		// Sanitize path to prevent zip slip (G305)
		name := filepath.Clean(f.Name)
		if strings.Contains(name, "..") {
			continue
		}
		destPath := filepath.Join(destDir, name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o750); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
			return err
		}

		if err := extractZipFile(f, destPath); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(f *zip.File, destPath string) error {
	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	// Limit extraction size to 1 GB to prevent decompression bombs (G110)
	const maxSize = 1 << 30
	_, err = io.Copy(outFile, io.LimitReader(rc, maxSize))
	return err
}
