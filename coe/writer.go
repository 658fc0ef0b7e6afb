package coe

import (
	"bufio"
	"io"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Options are the formatting options for Encode
type Options struct {
	// Comments are written at the top of the file, one per line, each
	// prefixed with a semicolon
	Comments []string

	// LineWrap is the number of entries per line. Zero or less puts each
	// entry on its own line.
	LineWrap int
}

type encoder struct {
	w   *bufio.Writer
	tmp [entryDigits + 2]byte
}

func (e *encoder) writeHeader(comments []string) error {
	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			if _, err := e.w.WriteString("; " + strings.TrimRight(line, "\r") + "\n"); err != nil {
				return err
			}
		}
	}
	if _, err := e.w.WriteString(radixKey + "=16;\n"); err != nil {
		return err
	}
	_, err := e.w.WriteString(vectorKey + "=\n")
	return err
}

func (e *encoder) writeEntries(entries []Pixel, wrap int) error {
	if wrap <= 0 {
		wrap = 1
	}
	last := len(entries) - 1
	for i, p := range entries {
		e.tmp[0] = hexDigits[p>>8&0x0f]
		e.tmp[1] = hexDigits[p>>4&0x0f]
		e.tmp[2] = hexDigits[p&0x0f]

		n := entryDigits
		switch {
		case i == last:
			e.tmp[n], e.tmp[n+1] = ';', '\n'
			n += 2
		case (i+1)%wrap == 0:
			e.tmp[n], e.tmp[n+1] = ',', '\n'
			n += 2
		default:
			e.tmp[n] = ','
			n++
		}

		if _, err := e.w.Write(e.tmp[:n]); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the memory image m to w in COE format. If o is nil the
// default options are used.
func Encode(w io.Writer, m *MemoryImage, o *Options) error {
	if len(m.Entries) == 0 {
		return errEmpty
	}
	if o == nil {
		o = &Options{}
	}

	e := encoder{w: bufio.NewWriter(w)}

	if err := e.writeHeader(o.Comments); err != nil {
		return err
	}
	if err := e.writeEntries(m.Entries, o.LineWrap); err != nil {
		return err
	}

	return e.w.Flush()
}
