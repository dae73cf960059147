// Package source loads export files into memory and decodes them to UTF-8.
package source

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/extract"
	"golang.org/x/text/encoding/korean"
)

// Supported input encodings.
const (
	EncodingAuto  = "auto"
	EncodingUTF8  = "utf-8"
	EncodingEUCKR = "euc-kr"
)

// Options controls how a file is loaded.
type Options struct {
	Progress io.Writer // progress bar destination; nil disables it
	Encoding string
}

// Load reads path fully and returns its text. Any I/O failure is reported as
// ErrRead wrapped in a user-facing error.
func Load(path string, opts Options) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return "", readError(err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close input file", "path", path, "error", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return "", readError(err)
	}

	var buf bytes.Buffer
	buf.Grow(int(info.Size()))

	var dst io.Writer = &buf
	if opts.Progress != nil {
		bar := newProgressBar(opts.Progress, info.Size())
		dst = io.MultiWriter(&buf, bar)
		defer func() {
			if finishErr := bar.Finish(); finishErr != nil {
				slog.Warn("Failed to finish progress bar", "error", finishErr)
			}
		}()
	}

	if _, err := io.Copy(dst, f); err != nil {
		return "", readError(err)
	}

	text, err := Decode(buf.Bytes(), opts.Encoding)
	if err != nil {
		return "", err
	}
	slog.Debug("Loaded export", "path", path, "bytes", info.Size(), "encoding", opts.Encoding)
	return text, nil
}

// Decode converts raw bytes to UTF-8 text without a byte-order mark. In auto
// mode, input that is not valid UTF-8 is treated as EUC-KR.
func Decode(data []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingAuto:
		if utf8.Valid(data) {
			return extract.StripBOM(string(data)), nil
		}
		return decodeEUCKR(data)
	case EncodingUTF8, "utf8":
		return extract.StripBOM(string(data)), nil
	case EncodingEUCKR, "cp949":
		return decodeEUCKR(data)
	default:
		return "", fmt.Errorf("%w: unsupported encoding %q", common.ErrInvalidConfig, encoding)
	}
}

func decodeEUCKR(data []byte) (string, error) {
	decoded, err := korean.EUCKR.NewDecoder().Bytes(data)
	if err != nil {
		return "", readError(fmt.Errorf("failed to decode EUC-KR: %w", err))
	}
	return extract.StripBOM(string(decoded)), nil
}

func readError(err error) error {
	return common.NewUserError(common.MsgReadFailed, fmt.Errorf("%w: %w", common.ErrRead, err))
}

func newProgressBar(w io.Writer, size int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Reading export...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
