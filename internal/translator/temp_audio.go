package translator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

const defaultAudioExt = ".m4a"

var audioExtRe = regexp.MustCompile(`^\.[A-Za-z0-9]{1,8}$`)

// audioExtension keeps the upload's extension so the provider can tell the
// format apart. Anything unusable becomes .m4a.
func audioExtension(filename string) string {
	ext := filepath.Ext(filename)
	if !audioExtRe.MatchString(ext) {
		return defaultAudioExt
	}
	return ext
}

// withTempAudio copies audio into a new file under the service's temp dir and
// passes its path to fn. The file is gone by the time withTempAudio returns,
// on every path including a panic in fn.
func (s *TranslatorService) withTempAudio(audio io.Reader, ext string, fn func(path string) error) error {
	f, err := os.CreateTemp(s.tempDir, "audio-*"+ext)
	if err != nil {
		return fmt.Errorf("create temp audio: %w", err)
	}
	path := f.Name()
	defer s.removeTempAudio(path)

	if _, err := io.Copy(f, audio); err != nil {
		f.Close()
		return fmt.Errorf("write temp audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp audio: %w", err)
	}

	return fn(path)
}

func (s *TranslatorService) removeTempAudio(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove temp audio", zap.String("path", path), zap.Error(err))
		s.metrics.RecordTempCleanupFailure()
	}
}
