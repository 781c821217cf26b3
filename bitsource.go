package fsmbin

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

type BitEncoding int

const (
	EncodingText   = BitEncoding(iota) // ASCII '0' and '1', whitespace ignored
	EncodingBinary                     // Raw bytes, most significant bit first
)

func (e BitEncoding) String() string {
	switch e {
	case EncodingText:
		return "text"
	case EncodingBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseBitEncoding Returns the encoding named by s ("text" or "binary").
func ParseBitEncoding(s string) (BitEncoding, error) {
	switch s {
	case "text", "":
		return EncodingText, nil
	case "binary":
		return EncodingBinary, nil
	default:
		return 0, errors.Newf("unknown bit encoding %q", s)
	}
}

// ReadBits Decodes all bits from r.
func ReadBits(r io.Reader, enc BitEncoding) ([]int, error) {
	br := bufio.NewReader(r)
	bits := make([]int, 0)
	offset := 0
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return bits, nil
		}
		if err != nil {
			return nil, err
		}

		switch enc {
		case EncodingBinary:
			for i := 7; i >= 0; i-- {
				bits = append(bits, int(c>>i)&1)
			}
		default:
			switch c {
			case '0', '1':
				bits = append(bits, int(c-'0'))
			case ' ', '\t', '\n', '\r':
			default:
				return nil, invalidBitf("byte offset %d: symbol %q is not 0 or 1", offset, c)
			}
		}
		offset++
	}
}

// ReadBitsFile Decodes all bits from the named file.
func ReadBitsFile(path string, enc BitEncoding) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bit source %s", path)
	}
	defer f.Close()

	bits, err := ReadBits(f, enc)
	if err != nil {
		return nil, errors.Wrapf(err, "reading bit source %s", path)
	}
	return bits, nil
}

// RunFile Runs m over the bits of the named file.
func RunFile(m *FSM, path string, enc BitEncoding) (*Trace, error) {
	bits, err := ReadBitsFile(path, enc)
	if err != nil {
		return nil, err
	}
	return Run(m, bits)
}
