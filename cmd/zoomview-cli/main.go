// CLI-only version (no GUI dependencies)
package main

import (
	"fmt"
	"os"

	"zoomview/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomview-cli info <image>")
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
			fmt.Println("Usage: zoomview-cli replay <image> <script.toml> [-o output.png] [-w width] [-config file] [-trace]")
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

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`
  ███████╗ ██████╗  ██████╗ ███╗   ███╗██╗   ██╗██╗███████╗██╗    ██╗
  ╚══███╔╝██╔═══██╗██╔═══██╗████╗ ████║██║   ██║██║██╔════╝██║    ██║
    ███╔╝ ██║   ██║██║   ██║██╔████╔██║██║   ██║██║█████╗  ██║ █╗ ██║
   ███╔╝  ██║   ██║██║   ██║██║╚██╔╝██║╚██╗ ██╔╝██║██╔══╝  ██║███╗██║
  ███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║ ╚████╔╝ ██║███████╗╚███╔███╔╝
  ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝  ╚═══╝  ╚═╝╚══════╝ ╚══╝╚══╝

  Headless gesture replay for the zoomview engine (CLI version)

Usage:
  zoomview-cli <command> [arguments]

Commands:
  info <image>                     Show image format and dimensions
  replay <image> <script> [opts]   Play a gesture script and save the result
    -o <output.png>                Output file (default: output.png)
    -w <width>                     Container width (default: image width)
    -config <file>                 Config file (TOML)
    -trace                         Print the transform after every frame
  config                           Print the default configuration

Examples:
  zoomview-cli info photo.jpg
  zoomview-cli replay photo.jpg pinch.toml -o zoomed.png -trace`)
}
