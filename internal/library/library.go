// Package library walks a media directory tree, groups video files into
// seasons by parsing SxxEyy markers from filenames, and produces the
// verified episode.Descriptor lists the driver consumes. Filename
// cleaning uses a delimiter-normalizing, title-casing approach narrowed
// to TV season/episode extraction.
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"introscan/internal/driver"
	"introscan/internal/episode"
)

var videoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".m4v": true, ".avi": true, ".ts": true,
}

var episodePattern = regexp.MustCompile(`(?i)(?:^|[/\\._ -])S(\d{1,4})\s*E(\d{1,4})`)

// Scan walks root and returns one Season per distinct (series, season
// number) pair found, ordered by series name and then by ascending season
// number. Episodes within a
// season are ordered by episode number, then by path as a tiebreaker.
func Scan(root string) ([]driver.Season, error) {
	type key struct {
		series string
		season int
	}
	buckets := make(map[key][]scanned)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !videoExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		series, season, ep, ok := parse(path)
		if !ok {
			return nil
		}
		k := key{series: series, season: season}
		buckets[k] = append(buckets[k], scanned{path: path, episode: ep})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("library: walk %s: %w", root, err)
	}

	seasons := make([]driver.Season, 0, len(buckets))
	for k, entries := range buckets {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].episode != entries[j].episode {
				return entries[i].episode < entries[j].episode
			}
			return entries[i].path < entries[j].path
		})

		descriptors := make([]episode.Descriptor, len(entries))
		for i, e := range entries {
			descriptors[i] = episode.Descriptor{
				ID:     uuid.New(),
				Series: k.series,
				Season: k.season,
				Name:   filepath.Base(e.path),
				Path:   e.path,
			}
		}
		seasons = append(seasons, driver.Season{Series: k.series, Number: k.season, Episodes: descriptors})
	}

	sort.Slice(seasons, func(i, j int) bool {
		if seasons[i].Series != seasons[j].Series {
			return seasons[i].Series < seasons[j].Series
		}
		return seasons[i].Number < seasons[j].Number
	})

	return seasons, nil
}

type scanned struct {
	path    string
	episode int
}

// parse extracts a series name and season/episode numbers from a file
// path. The series name is derived from the show's directory (the
// grandparent of the file, assuming a Series/Season NN/file layout) when
// present, falling back to the text before the SxxEyy marker.
func parse(path string) (series string, season, ep int, ok bool) {
	base := filepath.Base(path)
	m := episodePattern.FindStringSubmatchIndex(base)
	if m == nil {
		return "", 0, 0, false
	}

	season, _ = strconv.Atoi(base[m[2]:m[3]])
	ep, _ = strconv.Atoi(base[m[4]:m[5]])

	if dirSeries := seriesFromPath(path); dirSeries != "" {
		return dirSeries, season, ep, true
	}

	title := base[:m[0]]
	return cleanTitle(title), season, ep, true
}

// seriesFromPath walks up from the file looking for a "Series Name"
// directory, skipping a "Season NN" directory if present immediately
// above the file.
func seriesFromPath(path string) string {
	dir := filepath.Dir(path)
	name := filepath.Base(dir)
	if regexp.MustCompile(`(?i)^season\s*\d+$`).MatchString(name) {
		dir = filepath.Dir(dir)
		name = filepath.Base(dir)
	}
	if name == "." || name == string(filepath.Separator) || name == "" {
		return ""
	}
	return cleanTitle(name)
}

func cleanTitle(raw string) string {
	var cleaned strings.Builder
	prevSpace := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Unknown Series"
	}
	return cases.Title(language.Und).String(title)
}
