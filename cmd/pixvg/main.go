package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/CoMakar/Pixvg/internal/raster"
	"github.com/CoMakar/Pixvg/internal/svgdoc"
	"github.com/CoMakar/Pixvg/internal/vectorize"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixvg %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	inDir := flag.String("in", "in", "input directory scanned for raster images")
	outDir := flag.String("out", "out", "output directory for generated SVG files")
	scale := flag.Int("scale", 1, "integer scale applied to all output coordinates (>= 1)")
	alpha := flag.Int("alpha", raster.DefaultAlphaThreshold, "alpha threshold (0-255); pixels below it are transparent")
	maxDim := flag.Int("max-dim", 4096, "reject images wider or taller than this many pixels (0 = no limit)")
	labelDump := flag.Bool("labels", false, "also write a <name>_labels.png visualization of the region labeling")
	smooth := flag.Bool("smooth", false, "trace the opaque silhouette with smooth curves instead of pixel-perfect paths")
	palette := flag.Bool("palette", false, "log the distinct colors of each image before converting")
	workers := flag.Int("workers", 0, "per-region worker count (0 = number of CPUs)")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	debug := os.Getenv("PIXVG_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("pixvg v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if *scale < 1 {
		log.Fatalf("scale %d is too low, must be >= 1", *scale)
	}
	if *alpha < 0 || *alpha > 255 {
		log.Fatalf("alpha threshold %d out of range 0-255", *alpha)
	}
	if err := os.MkdirAll(*inDir, 0o755); err != nil {
		log.Fatalf("cannot create input directory: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("cannot create output directory: %v", err)
	}

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		log.Fatalf("cannot read input directory: %v", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		log.Fatalf("no input files in %s", *inDir)
	}

	opts := vectorize.Options{Scale: *scale, Workers: *workers}
	converted := 0
	start := time.Now()

	for _, name := range files {
		fileStart := time.Now()
		inPath := filepath.Join(*inDir, name)

		img, err := imaging.Open(inPath)
		if err != nil {
			log.Printf("%s: skipped (%v)", name, err)
			continue
		}
		bounds := img.Bounds()
		if *maxDim > 0 && (bounds.Dx() > *maxDim || bounds.Dy() > *maxDim) {
			log.Printf("%s: skipped (%dx%d exceeds max dimension %d)", name, bounds.Dx(), bounds.Dy(), *maxDim)
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		outName := fmt.Sprintf("%s_X%d.svg", stem, *scale)
		outPath := filepath.Join(*outDir, outName)

		if *smooth {
			doc, err := svgdoc.TraceSmooth(img, uint8(*alpha))
			if err != nil {
				log.Printf("%s: skipped (%v)", name, err)
				continue
			}
			if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
				log.Fatalf("%s: cannot write %s: %v", name, outPath, err)
			}
			log.Printf("%s: %dx%d -> %s (smooth, %.2fs)", name, bounds.Dx(), bounds.Dy(), outName, time.Since(fileStart).Seconds())
			converted++
			continue
		}

		grid, err := raster.FromImage(img, uint8(*alpha))
		if err != nil {
			log.Printf("%s: skipped (%v)", name, err)
			continue
		}

		if *palette {
			for _, entry := range raster.Palette(grid) {
				log.Printf("%s: color %s (%d px)", name, entry.Hex, entry.Pixels)
			}
		}

		doc, err := vectorize.Convert(grid, opts)
		if err != nil {
			log.Fatalf("%s: conversion failed: %v", name, err)
		}

		out, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("%s: cannot create %s: %v", name, outPath, err)
		}
		if err := svgdoc.Write(out, doc); err != nil {
			out.Close()
			log.Fatalf("%s: cannot write %s: %v", name, outPath, err)
		}
		if err := out.Close(); err != nil {
			log.Fatalf("%s: cannot write %s: %v", name, outPath, err)
		}

		if *labelDump {
			labelPath := filepath.Join(*outDir, stem+"_labels.png")
			if err := raster.SaveLabelMap(labelPath, raster.LabelRegions(grid), *scale); err != nil {
				log.Printf("%s: label dump failed: %v", name, err)
			}
		}

		log.Printf("%s: %dx%d, %d regions -> %s (%.2fs)", name, grid.Width(), grid.Height(), len(doc.Regions), outName, time.Since(fileStart).Seconds())
		converted++
	}

	log.Printf("done: %d/%d files in %.2fs", converted, len(files), time.Since(start).Seconds())
}
