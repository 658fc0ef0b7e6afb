package vgacoe

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

// WriteFile writes the output of fn to file. The content goes to a
// temporary file in the same directory which replaces file only once fn and
// all writes have succeeded.
func WriteFile(file string, fn func(io.Writer) error) (err error) {
	defer func() {
		if err != nil {
			err = &WriteError{Path: file, Err: err}
		}
	}()

	f, err := ioutil.TempFile(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(f.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(f.Name(), file)
}
