package textio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"bisub/internal/services"
)

// Charset names reported in Decoded.
const (
	CharsetUTF8    = "UTF-8"
	CharsetUTF16LE = "UTF-16LE"
	CharsetUTF16BE = "UTF-16BE"
	CharsetGB18030 = "GB-18030"
	CharsetBig5    = "Big5"
)

// StdinPath selects standard input in ReadFile.
const StdinPath = "-"

// Decoded is text converted to UTF-8 along with the charset it came from.
type Decoded struct {
	Text    string
	Charset string
}

// Options controls ReadFile.
type Options struct {
	// DetectEncoding enables GB18030/Big5 detection for non UTF-8 input.
	DetectEncoding bool
	// Stdin replaces os.Stdin when path is StdinPath.
	Stdin io.Reader
}

var detectable = map[string]encoding.Encoding{
	CharsetGB18030: simplifiedchinese.GB18030,
	CharsetBig5:    traditionalchinese.Big5,
}

// Decode converts data to UTF-8 text. A leading BOM is removed. Input that is
// not valid UTF-8 is an error unless detect is set and the detected charset is
// GB18030 or Big5.
func Decode(data []byte, detect bool) (Decoded, error) {
	reader, bom := utfbom.Skip(bytes.NewReader(data))
	switch bom {
	case utfbom.UTF16LittleEndian:
		return transcode(reader, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), CharsetUTF16LE)
	case utfbom.UTF16BigEndian:
		return transcode(reader, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), CharsetUTF16BE)
	case utfbom.UTF32LittleEndian, utfbom.UTF32BigEndian:
		return Decoded{}, services.Wrap(services.ErrValidation, "textio", "decode", "UTF-32 input is not supported", nil)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return Decoded{}, fmt.Errorf("read input: %w", err)
	}
	if utf8.Valid(body) {
		return Decoded{Text: string(body), Charset: CharsetUTF8}, nil
	}
	if !detect {
		return Decoded{}, services.Wrap(services.ErrValidation, "textio", "decode",
			"input is not valid UTF-8 and encoding detection is disabled", nil)
	}

	result, err := chardet.NewTextDetector().DetectBest(body)
	if err != nil {
		return Decoded{}, services.Wrap(services.ErrValidation, "textio", "detect charset", "", err)
	}
	enc, ok := detectable[result.Charset]
	if !ok {
		return Decoded{}, services.Wrap(services.ErrValidation, "textio", "detect charset",
			fmt.Sprintf("unsupported charset %q (confidence %d)", result.Charset, result.Confidence), nil)
	}
	return transcode(bytes.NewReader(body), enc, result.Charset)
}

func transcode(r io.Reader, enc encoding.Encoding, charset string) (Decoded, error) {
	out, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return Decoded{}, services.Wrap(services.ErrValidation, "textio", "decode", charset, err)
	}
	return Decoded{Text: string(out), Charset: charset}, nil
}

// Read decodes everything r yields.
func Read(r io.Reader, detect bool) (Decoded, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("read input: %w", err)
	}
	return Decode(data, detect)
}

// ReadFile reads and decodes path. StdinPath reads standard input.
func ReadFile(path string, opts Options) (Decoded, error) {
	if path == StdinPath {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return Read(stdin, opts.DetectEncoding)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Decoded{}, fmt.Errorf("read %s: %w", path, err)
	}
	decoded, err := Decode(data, opts.DetectEncoding)
	if err != nil {
		return Decoded{}, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}
