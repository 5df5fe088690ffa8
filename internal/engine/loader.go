package engine

// loader.go parses a SIC/XE object program (the line-oriented ASCII H/T/E
// record format) into memory writes and a start address, per spec §4.3. The
// loader never executes; it only populates memory and PC.

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/smoynes/sicxe/internal/log"
)

// Loader populates a Machine's memory from an object program.
type Loader struct {
	m   *Machine
	log *log.Logger
}

// NewLoader returns a loader bound to m.
func NewLoader(m *Machine) *Loader {
	return &Loader{m: m, log: log.DefaultLogger()}
}

// Load resets the machine, parses src as an object program, writes its text
// records into memory relative to the header's start address, and sets PC
// from the end record.
func (l *Loader) Load(src io.Reader) error {
	l.m.Reset()

	scanner := bufio.NewScanner(src)

	var (
		haveHeader, haveEnd bool
		start               Word
		entry               Word
	)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case 'H':
			if haveHeader {
				return &LoaderError{Msg: "duplicate H record"}
			}

			addr, err := parseHeader(line)
			if err != nil {
				return err
			}

			start = addr
			haveHeader = true

		case 'T':
			if !haveHeader {
				return &LoaderError{Msg: "T record before H record"}
			}

			if err := l.loadText(line, start); err != nil {
				return err
			}

		case 'E':
			if !haveHeader {
				return &LoaderError{Msg: "E record before H record"}
			}

			if haveEnd {
				return &LoaderError{Msg: "duplicate E record"}
			}

			addr, err := parseEnd(line)
			if err != nil {
				return err
			}

			entry = addr
			haveEnd = true

		default:
			return &LoaderError{Msg: fmt.Sprintf("unrecognized record type %q", line[0])}
		}
	}

	if err := scanner.Err(); err != nil {
		return &LoaderError{Msg: "reading object program", Err: err}
	}

	if !haveHeader {
		return &LoaderError{Msg: "missing H record"}
	}

	if !haveEnd {
		return &LoaderError{Msg: "missing E record"}
	}

	l.m.Reg.Set(PC, entry)
	l.log.Debug("loaded object program", "start", start, "entry", entry)

	return nil
}

// parseHeader extracts the start address from an H record:
// "H" + 6 chars name + 6 hex chars start address + 6 hex chars length.
func parseHeader(line string) (Word, error) {
	if len(line) < 19 {
		return 0, &LoaderError{Msg: "truncated H record"}
	}

	addr, err := parseHex24(line[7:13])
	if err != nil {
		return 0, &LoaderError{Msg: "malformed H record address", Err: err}
	}

	return addr, nil
}

// loadText parses a T record: "T" + 6 hex chars address + 2 hex chars byte
// count + N pairs of hex digits, and stores its bytes relative to start.
func (l *Loader) loadText(line string, start Word) error {
	if len(line) < 9 {
		return &LoaderError{Msg: "truncated T record"}
	}

	recordStart, err := parseHex24(line[1:7])
	if err != nil {
		return &LoaderError{Msg: "malformed T record address", Err: err}
	}

	count, err := parseHexByte(line[7:9])
	if err != nil {
		return &LoaderError{Msg: "malformed T record length", Err: err}
	}

	data := line[9:]
	if len(data) < int(count)*2 {
		return &LoaderError{Msg: "truncated T record data"}
	}

	bytes, err := hex.DecodeString(data[:int(count)*2])
	if err != nil {
		return &LoaderError{Msg: "malformed T record data", Err: err}
	}

	base := start + recordStart

	for i, b := range bytes {
		l.m.Mem.WriteByte(base+Word(i), b)
	}

	return nil
}

// parseEnd extracts the first-instruction address from an E record:
// "E" + 6 hex chars address.
func parseEnd(line string) (Word, error) {
	if len(line) < 7 {
		return 0, &LoaderError{Msg: "truncated E record"}
	}

	addr, err := parseHex24(line[1:7])
	if err != nil {
		return 0, &LoaderError{Msg: "malformed E record address", Err: err}
	}

	return addr, nil
}

func parseHex24(s string) (Word, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 3 {
		return 0, fmt.Errorf("expected 6 hex digits, got %q", s)
	}

	return Word(b[0])<<16 | Word(b[1])<<8 | Word(b[2]), nil
}

func parseHexByte(s string) (byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 1 {
		return 0, fmt.Errorf("expected 2 hex digits, got %q", s)
	}

	return b[0], nil
}
