package coe

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errOutOfRange = errors.New("value does not fit in 12 bits")

// Document is a decoded COE file
type Document struct {
	Comments []string
	Radix    int
	Entries  []Pixel
}

// Depth returns the number of entries in the initialization vector
func (d *Document) Depth() int {
	return len(d.Entries)
}

// Frame interprets the entries as a sequence of width by height frames and
// returns the i-th one. The returned image shares storage with the
// document.
func (d *Document) Frame(i, width, height int) (*Image, error) {
	return frameImage(d.Entries, i, width, height)
}

type decoder struct {
	r   *bufio.Reader
	doc Document

	inVector bool
	done     bool
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

func (d *decoder) parseEntries(s string) error {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		if rest := strings.TrimSpace(s[i+1:]); rest != "" && rest[0] != ';' {
			return errTrailing
		}
		s = s[:i]
		d.done = true
	}
	for _, tok := range strings.FieldsFunc(s, isSeparator) {
		v, err := strconv.ParseUint(tok, d.doc.Radix, 16)
		if err == nil && v > entryMask {
			err = errOutOfRange
		}
		if err != nil {
			return &EntryError{
				Index: len(d.doc.Entries),
				Entry: tok,
				Err:   err,
			}
		}
		d.doc.Entries = append(d.doc.Entries, Pixel(v))
	}
	return nil
}

func (d *decoder) parseLine(line string) error {
	switch {
	case d.done:
		if line != "" && line[0] != ';' {
			return errTrailing
		}
		return nil
	case d.inVector:
		return d.parseEntries(line)
	case line == "":
		return nil
	case line[0] == ';':
		d.doc.Comments = append(d.doc.Comments, strings.TrimSpace(line[1:]))
		return nil
	}

	i := strings.IndexByte(line, '=')
	if i < 0 {
		return errNoVector
	}
	key, value := strings.ToLower(strings.TrimSpace(line[:i])), strings.TrimSpace(line[i+1:])

	switch key {
	case radixKey:
		radix, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(value, ";")))
		if err != nil {
			return errBadRadix
		}
		switch radix {
		case 2, 10, 16:
			d.doc.Radix = radix
		default:
			return errBadRadix
		}
	case vectorKey:
		if d.doc.Radix == 0 {
			return errNoRadix
		}
		d.inVector = true
		return d.parseEntries(value)
	}

	// Anything else, such as a coefficient declaration, is ignored
	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = bufio.NewReader(r)

	for {
		line, err := d.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if perr := d.parseLine(strings.TrimSpace(line)); perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
	}

	switch {
	case d.doc.Radix == 0:
		return errNoRadix
	case !d.inVector:
		return errNoVector
	case !d.done:
		return errUnterminated
	}

	return nil
}

// Decode reads a COE file from r
func Decode(r io.Reader) (*Document, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return &d.doc, nil
}
