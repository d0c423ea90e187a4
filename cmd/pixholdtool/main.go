// pixholdtool is a CLI utility for generating placeholder PNG files.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/pixhold/pkg/hexcolor"
	"github.com/Faultbox/pixhold/pkg/png"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "gen", "generate":
		cmdGen(args)
	case "contrast":
		cmdContrast(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pixholdtool - placeholder PNG generator

Usage:
  pixholdtool <command> [options]

Commands:
  gen <WxH> <color> <out.png>  Generate a single-color PNG file
  contrast <color>             Print the readable overlay color for a fill

Colors are 3- or 6-digit hex, with or without a leading '#'.

Examples:
  pixholdtool gen 300x200 ff0000 red.png
  pixholdtool gen 64x64 "#336699" icon.png
  pixholdtool contrast f0f0f0`)
}

func cmdGen(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: pixholdtool gen <WxH> <color> <out.png>")
		os.Exit(1)
	}

	width, height, err := parseSize(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fill, err := hexcolor.Parse(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := png.Encode(width, height, fill)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(args[2], data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d, %d bytes)\n", args[2], width, height, len(data))
}

func cmdContrast(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pixholdtool contrast <color>")
		os.Exit(1)
	}

	fill, err := hexcolor.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	label := hexcolor.ContrastOf(fill)
	overlay := label.RGB()
	fmt.Printf("%s (overlay #%02x%02x%02x)\n", label, overlay.R, overlay.G, overlay.B)
}

// parseSize parses "300x200"; a bare number means a square image.
func parseSize(text string) (int, int, error) {
	before, after, found := strings.Cut(text, "x")
	if !found {
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size %q", text)
		}
		return n, n, nil
	}

	w, err := strconv.Atoi(before)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q", text)
	}
	h, err := strconv.Atoi(after)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q", text)
	}
	return w, h, nil
}
