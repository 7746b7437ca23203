package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zoomview/internal/cli"
	"zoomview/internal/gui"
)

func main() {
	if len(os.Args) < 2 {
		cmdGUI(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomview info <image>")
			os.Exit(1)
		}
		if err := cli.Info(os.Stdout, os.Args[2]); err != nil {
			fmt.Printf("Error reading image: %v\n", err)
			os.Exit(1)
		}

	case "replay":
		ra, err := cli.ParseReplayArgs(os.Args[2:])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Usage: zoomview replay <image> <script.toml> [-o output.png] [-w width] [-config file] [-trace]")
			os.Exit(1)
		}
		if err := cli.Replay(os.Stdout, ra); err != nil {
			fmt.Printf("Error replaying script: %v\n", err)
			os.Exit(1)
		}

	case "config":
		if err := cli.PrintConfig(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

	case "gui":
		cmdGUI(os.Args[2:])

	case "help", "-h", "--help":
		printUsage()

	default:
		// If it looks like an image, open the GUI
		if isImage(command) {
			cmdGUI(os.Args[1:])
		} else {
			fmt.Printf("Unknown command: %s\n", command)
			printUsage()
			os.Exit(1)
		}
	}
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

func printUsage() {
	fmt.Println(`
  ███████╗ ██████╗  ██████╗ ███╗   ███╗██╗   ██╗██╗███████╗██╗    ██╗
  ╚══███╔╝██╔═══██╗██╔═══██╗████╗ ████║██║   ██║██║██╔════╝██║    ██║
    ███╔╝ ██║   ██║██║   ██║██╔████╔██║██║   ██║██║█████╗  ██║ █╗ ██║
   ███╔╝  ██║   ██║██║   ██║██║╚██╔╝██║╚██╗ ██╔╝██║██╔══╝  ██║███╗██║
  ███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║ ╚████╔╝ ██║███████╗╚███╔███╔╝
  ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝  ╚═══╝  ╚═╝╚══════╝ ╚══╝╚══╝

  An image viewer with pan, pinch and double-tap zoom

Usage:
  zoomview <command> [arguments]

Commands:
  info <image>                     Show image format and dimensions
  replay <image> <script> [opts]   Play a gesture script and save the result
    -o <output.png>                Output file (default: output.png)
    -w <width>                     Container width (default: image width)
    -config <file>                 Config file (TOML)
    -trace                         Print the transform after every frame
  config                           Print the default configuration
  gui [image] [-config file]       Open GUI viewer
  <image>                          Open image in GUI viewer (shortcut)

Examples:
  zoomview info photo.jpg
  zoomview replay photo.jpg pinch.toml -o zoomed.png -w 400
  zoomview config > zoomview.toml
  zoomview photo.jpg

Gestures:
  drag         Pan
  two fingers  Pinch to zoom (scroll wheel on desktop)
  double tap   Cycle Fit, Max and Min zoom`)
}

func cmdGUI(args []string) {
	ga, err := cli.ParseGUIArgs(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts, log, err := cli.LoadConfig(ga.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	app, err := gui.NewApp(log, opts...)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if ga.Image != "" {
		app.RunWithFile(ga.Image)
	} else {
		app.Run()
	}
}
