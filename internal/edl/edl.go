// Package edl writes MPlayer-style edit decision list files: one line per
// skippable region as "start\tend\taction", action 0 meaning "cut" (the
// convention media players since MPlayer use for auto-skip regions). This
// is a small, self-contained writer built on bufio/os rather than a
// third-party dependency, since the format is a handful of tab-separated
// lines with no encoding, framing, or parsing complexity to justify one.
package edl

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"introscan/internal/episode"
)

const cutAction = 0

// PathFor returns the EDL sidecar path for a media file: the same path
// with its extension replaced by ".edl".
func PathFor(mediaPath string) string {
	ext := filepath.Ext(mediaPath)
	return strings.TrimSuffix(mediaPath, ext) + ".edl"
}

// Write emits one EDL file per episode that has a valid intro, skipping
// episodes with default (zero-duration) intros. It returns the number of
// files written.
func Write(episodes []episode.Descriptor, intros episode.SeasonIntros) (int, error) {
	written := 0
	for _, ep := range episodes {
		intro, ok := intros[ep.ID]
		if !ok || !intro.Valid() {
			continue
		}
		if err := writeOne(ep.Path, intro); err != nil {
			return written, fmt.Errorf("edl: write %s: %w", ep.Path, err)
		}
		written++
	}
	return written, nil
}

func writeOne(mediaPath string, intro episode.Intro) error {
	f, err := os.Create(PathFor(mediaPath))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%.2f\t%.2f\t%d\n", intro.Start, intro.End, cutAction)
	return w.Flush()
}
