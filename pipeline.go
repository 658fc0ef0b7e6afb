package vgacoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/bodgit/vgacoe/frames"
)

const (
	// ManifestFilename is the name of the file listing the outputs of Batch
	ManifestFilename = "file_list.txt"

	numWorkers = 4
)

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".gif", ".jpeg", ".jpg", ".png":
		return true
	}
	return false
}

func isHidden(name string) bool {
	return name[0] == '.'
}

func outputName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".coe"
}

// checkOutputs fails if two images in dir would be converted to the same
// output file, such as "logo.png" and "logo.gif"
func checkOutputs(dir string) error {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return err
	}

	seen := make(map[string]string)
	for _, info := range infos {
		if isHidden(info.Name()) || !info.Mode().IsRegular() || !isImage(info.Name()) {
			continue
		}
		name := outputName(info.Name())
		key := strings.ToLower(name)
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", other, info.Name(), name)
		}
		seen[key] = info.Name()
	}

	return nil
}

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if isHidden(info.Name()) && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Only the top directory is converted
			if info.Mode().IsDir() {
				if file != base {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

type manifest struct {
	mu    sync.Mutex
	files []string
}

func (m *manifest) add(file string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = append(m.files, file)
}

func (c *Converter) convertCached(input, output string) error {
	var sha string
	if c.catalog != nil {
		var err error
		if sha, err = hashFile(input); err != nil {
			return err
		}

		conv, err := c.catalog.Find(sha, c.cfg.key(), output)
		if err != nil {
			return err
		}
		if conv != nil {
			if _, err := os.Stat(output); err == nil {
				c.logger.Printf("Skipping \"%s\", unchanged since %s\n", input, conv.Created.Format("2006-01-02 15:04:05"))
				return nil
			}
		}
	}

	r, err := c.ConvertImage(input, output)
	if err != nil {
		return err
	}

	if c.catalog != nil {
		return c.catalog.Record(Conversion{
			SHA1:     sha,
			Settings: c.cfg.key(),
			Output:   output,
			Depth:    r.Depth,
		})
	}

	return nil
}

func (c *Converter) imageWorker(ctx context.Context, in <-chan string, outDir string, m *manifest) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if ctx.Err() != nil {
				continue
			}
			name := outputName(file)
			if err := c.convertCached(file, filepath.Join(outDir, name)); err != nil {
				errc <- fmt.Errorf("%s: %w", file, err)
				return
			}
			m.add(name)
		}
	}()
	return errc, nil
}

// waitForPipeline returns the first error from any stage. After an error
// the remaining stages are cancelled and drained so nothing is left running.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// splitNumber splits a trailing run of digits from s
func splitNumber(s string) (string, int, bool) {
	i := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) + 1
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}

// naturalLess orders "frame_2.coe" before "frame_10.coe"
func naturalLess(a, b string) bool {
	pa, na, oka := splitNumber(strings.TrimSuffix(a, filepath.Ext(a)))
	pb, nb, okb := splitNumber(strings.TrimSuffix(b, filepath.Ext(b)))
	if oka && okb && pa == pb && na != nb {
		return na < nb
	}
	return a < b
}

func writeManifest(w io.Writer, files []string) error {
	if _, err := fmt.Fprintf(w, "COE File List\n%s\n", strings.Repeat("=", 40)); err != nil {
		return err
	}
	for _, file := range files {
		if _, err := fmt.Fprintln(w, file); err != nil {
			return err
		}
	}
	return nil
}

// Batch converts every image in the top level of inDir into a COE file of
// the same name in outDir, which is created if necessary, and then writes
// a manifest of the files produced. When a catalog is in use, images that
// have not changed since they were last converted with the same settings
// are skipped but still listed.
func (c *Converter) Batch(inDir, outDir string) ([]string, error) {
	dir, err := filepath.Abs(inDir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s", frames.ErrInputNotFound, inDir)
	case err != nil:
		return nil, err
	case !info.IsDir():
		return nil, errors.New("not a directory")
	}

	if err := checkOutputs(dir); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findImages(ctx, dir)
	if err != nil {
		return nil, err
	}
	errcList = append(errcList, errc)

	m := new(manifest)
	for i := 0; i < numWorkers; i++ {
		errc, err := c.imageWorker(ctx, files, outDir, m)
		if err != nil {
			return nil, err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(cancelFunc, errcList...); err != nil {
		return nil, err
	}

	sort.Slice(m.files, func(i, j int) bool { return naturalLess(m.files[i], m.files[j]) })

	if err := WriteFile(filepath.Join(outDir, ManifestFilename), func(w io.Writer) error {
		return writeManifest(w, m.files)
	}); err != nil {
		return nil, err
	}

	c.logger.Printf("Converted %d image(s) into %s\n", len(m.files), outDir)

	return m.files, nil
}
