package wwart

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/wwart/manifest"
	"github.com/bodgit/wwart/picture"
	"github.com/bodgit/wwart/preview"
)

func (c *Catalog) findDirectories(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(dir string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a directory
			if !info.Mode().IsDir() {
				return nil
			}

			select {
			case out <- dir:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

// addPicture decodes one picture file, stores it in the catalog and returns
// its filename checksum and preview raster.
func (c *Catalog) addPicture(file string) (uint32, []byte, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return 0, nil, err
	}

	h, kind, err := picture.DecodeHeader(bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}

	m, err := picture.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}

	b := new(bytes.Buffer)
	if err := preview.Encode(b, m); err != nil {
		return 0, nil, err
	}

	sha, err := shaFile(file)
	if err != nil {
		return 0, nil, err
	}

	crc, err := crcFile(file)
	if err != nil {
		return 0, nil, err
	}

	id, err := c.db.AddPicture(sha, crc, h, kind, b.Bytes())
	if err != nil {
		return 0, nil, err
	}

	name := manifest.CRCFilename(filepath.Base(file))
	if err := c.db.AddName(id, name); err != nil {
		return 0, nil, err
	}

	return name, b.Bytes(), nil
}

func (c *Catalog) directoryWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for dir := range in {
			idx := manifest.New()
			if err := filepath.Walk(dir, func(file string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
				if info.Name()[0] == '.' {
					if info.Mode().IsDir() {
						return filepath.SkipDir
					}
					return nil
				}

				// Ignore anything that isn't a normal file
				if !info.Mode().IsRegular() {
					return nil
				}

				// Nothing the original tools wrote gets anywhere near this big
				if info.Size() > 1<<20 {
					return nil
				}

				switch strings.ToLower(filepath.Ext(file)) {
				case ".lbm", ".bbm", ".pbm":
					// Check files are in the "top" directory
					if filepath.Dir(file) != dir {
						return nil
					}

					crc, p, err := c.addPicture(file)
					if err != nil {
						// A stray extension on something that isn't a picture
						// shouldn't abort the whole scan
						c.logger.Printf("Skipping \"%s\": %v\n", file, err)
						return nil
					}

					if err := idx.Set(crc, p); err != nil {
						return err
					}
				}

				return nil
			}); err != nil {
				errc <- err
				return
			}

			if idx.Length() > 0 {
				b, err := idx.MarshalBinary()
				if err != nil {
					errc <- err
					return
				}

				if err := ioutil.WriteFile(filepath.Join(dir, manifest.Filename), b, 0644); err != nil {
					errc <- err
					return
				}
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
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

// Scan walks every directory below path, catalogues each picture file it
// finds and writes a preview manifest into every directory that contains
// pictures.
func (c *Catalog) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dirs, errc, err := c.findDirectories(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := c.directoryWorker(ctx, dirs)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
