// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gallery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type nothing struct{}

// Recognised image extensions. Matching is case sensitive.
var extensions = map[string]nothing{
	"cur":  {},
	"ico":  {},
	"bmp":  {},
	"pnm":  {},
	"xpm":  {},
	"xcf":  {},
	"pcx":  {},
	"gif":  {},
	"jpg":  {},
	"jpeg": {},
	"tif":  {},
	"tiff": {},
	"png":  {},
	"tga":  {},
	"lbm":  {},
	"xv":   {},
	"webp": {},
}

// IsImage reports whether the file name has a recognised extension.
// A dot file such as ".png" has no extension.
func IsImage(name string) bool {
	ext := filepath.Ext(name)
	if len(ext) < 2 || len(name) == len(ext) {
		return false
	}
	_, ok := extensions[strings.TrimPrefix(ext, ".")]
	return ok
}

// Discover returns an Entry for every image file in dir, ordered by
// file name. Sub-directories, and links that do not resolve to a
// regular file, are skipped.
func Discover(dir string) ([]*Entry, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, &DiscoveryError{Dir: dir, Err: err}
	}
	if !st.IsDir() {
		return nil, &DiscoveryError{Dir: dir, Err: fmt.Errorf("not a directory")}
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DiscoveryError{Dir: dir, Err: err}
	}
	var entries []*Entry
	for _, f := range files {
		if !IsImage(f.Name()) {
			continue
		}
		path := filepath.Join(dir, f.Name())
		if !isRegular(path, f) {
			continue
		}
		entries = append(entries, NewEntry(path))
	}
	return entries, nil
}

func isRegular(path string, f fs.DirEntry) bool {
	if f.Type().IsRegular() {
		return true
	}
	if f.Type()&fs.ModeSymlink == 0 {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
