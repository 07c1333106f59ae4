package zip

import (
	"archive/zip"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ListEntries returns the names of the files in the archive, in archive
// order. Directory entries are skipped.
func ListEntries(archive string) ([]string, error) {
	log.Debugf("Reading entries of '%s'", archive)

	zReader, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	defer zReader.Close()

	var names []string
	for _, file := range zReader.Reader.File {
		if file.FileInfo().IsDir() || strings.HasSuffix(file.Name, "/") {
			continue
		}
		names = append(names, file.Name)
	}
	return names, nil
}

// ListEntriesWithPrefix is ListEntries restricted to names starting with prefix.
func ListEntriesWithPrefix(archive string, prefix string) ([]string, error) {
	names, err := ListEntries(archive)
	if err != nil || prefix == "" {
		return names, err
	}
	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out, nil
}
