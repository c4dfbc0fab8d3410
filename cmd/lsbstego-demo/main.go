// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Command lsbstego-demo drives the lsbstego engine end to end: it loads or
// synthesizes a set of raster images, precomputes an embedding plan for a
// payload, embeds it, and extracts it back from each participating image
// to confirm the round trip. Image decoding/encoding and the flag surface
// below are demo plumbing, not part of the core engine.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zanicar/lsbstego"
	"github.com/zanicar/lsbstego/internal/xlog"
	"github.com/zanicar/lsbstego/plan"
	"github.com/zanicar/lsbstego/raster"
)

func usage() {
	fmt.Fprintf(os.Stderr, "lsbstego-demo: embed and extract a payload across one or more images\n\n")
	fmt.Fprintf(os.Stderr, "\t> lsbstego-demo -in a.png,b.png -size 4096 -reserved 8 -out ./out\n")
	fmt.Fprintf(os.Stderr, "\t> lsbstego-demo -n 3 -w 128 -h 128 -size 4096\n\n")
	flag.PrintDefaults()
}

func main() {
	var (
		in       string
		n        int
		w, h     int
		size     int
		reserved int
		out      string
		verbose  bool
		help     bool
	)

	flag.StringVar(&in, "in", "", "comma-separated input PNG/JPEG files; if empty, synthesize -n random images")
	flag.IntVar(&n, "n", 2, "number of images to synthesize when -in is empty")
	flag.IntVar(&w, "w", 64, "synthesized image width")
	flag.IntVar(&h, "h", 64, "synthesized image height")
	flag.IntVar(&size, "size", 1024, "random payload size in bytes")
	flag.IntVar(&reserved, "reserved", 0, "per-image reserved framing overhead in bytes")
	flag.StringVar(&out, "out", "", "directory to write modified PNGs to (optional)")
	flag.BoolVar(&verbose, "v", false, "verbose structured logging")
	flag.BoolVar(&help, "help", false, "help")
	flag.Parse()

	if help {
		usage()
		return
	}
	if verbose {
		xlog.SetOutput(os.Stderr)
	}

	images, err := loadOrSynthesize(in, n, w, h)
	if err != nil {
		fatal(err)
	}

	payload := make([]byte, size)
	if _, err := rand.Read(payload); err != nil {
		fatal(fmt.Errorf("payload: %w", err))
	}

	engine := lsbstego.New()

	p, err := engine.Precompute(images, uint64(len(payload)), uint64(reserved))
	if err != nil {
		fatal(fmt.Errorf("precompute: %w", err))
	}
	defer p.Release()

	pieces := splitPayload(payload, p)
	if err := engine.Embed(p, pieces); err != nil {
		fatal(fmt.Errorf("embed: %w", err))
	}

	if out != "" {
		if err := os.MkdirAll(out, 0o755); err != nil {
			fatal(fmt.Errorf("out dir: %w", err))
		}
		for i, entry := range p.Entries {
			path := fmt.Sprintf("%s/image-%02d.png", out, i)
			f, err := os.Create(path)
			if err != nil {
				fatal(fmt.Errorf("create %s: %w", path, err))
			}
			err = encodeImage(f, entry.Image)
			f.Close()
			if err != nil {
				fatal(err)
			}
		}
	}

	var recovered []byte
	for i, entry := range p.Entries {
		data, err := engine.Extract(entry.Image, uint64(reserved))
		if err != nil {
			fatal(fmt.Errorf("extract image %d: %w", i, err))
		}
		recovered = append(recovered, data...)
	}

	if string(recovered) == string(payload) {
		fmt.Printf("round trip ok: %d bytes across %d image(s)\n", len(payload), len(p.Entries))
	} else {
		fmt.Fprintf(os.Stderr, "round trip mismatch: got %d bytes, want %d\n", len(recovered), len(payload))
		os.Exit(1)
	}
}

// splitPayload divides payload across p's entries in order, filling each
// entry's usage capacity before moving to the next, matching the
// orchestrator's input-order processing rule.
func splitPayload(payload []byte, p *plan.Plan) []lsbstego.Piece {
	pieces := make([]lsbstego.Piece, len(p.Entries))
	offset := 0
	for i, entry := range p.Entries {
		capacity := entry.Usage * entry.BlockBytes()
		n := capacity
		if remaining := len(payload) - offset; remaining < n {
			n = remaining
		}
		if n < 0 {
			n = 0
		}
		pieces[i] = lsbstego.Piece{Data: payload[offset : offset+n]}
		offset += n
	}
	return pieces
}

func loadOrSynthesize(in string, n, w, h int) ([]raster.Image, error) {
	if in != "" {
		paths := strings.Split(in, ",")
		images := make([]raster.Image, 0, len(paths))
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", path, err)
			}
			img, err := decodeImage(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
			images = append(images, img)
		}
		return images, nil
	}

	images := make([]raster.Image, n)
	for i := range images {
		pix := make([]byte, w*h*4)
		if _, err := rand.Read(pix); err != nil {
			return nil, fmt.Errorf("synthesize image %d: %w", i, err)
		}
		img, err := raster.New(w, h, 4, pix)
		if err != nil {
			return nil, err
		}
		images[i] = img
	}
	return images, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
