package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"displayled/host/board"
	"displayled/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	pace    = flag.Duration("pace", board.DefaultPace, "Delay between characters sent to the board")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	fmt.Println("DisplayLED Host - button/character panel console")
	fmt.Println("================================================")
	fmt.Println()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to board on %s...\n", *device)
	b, err := board.ConnectWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer b.Close()
	b.Pace = *pace

	fmt.Println("Connected successfully!")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Board log lines are printed as they arrive
	go func() {
		if err := b.Listen(ctx, boardLog{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("Type characters to show on the panel (type 'help' for commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		default:
			start := time.Now()
			n, err := b.Send(ctx, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if *verbose {
				fmt.Printf("sent %d characters in %v\n", n, time.Since(start).Round(time.Millisecond))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

type boardLog struct{}

func (boardLog) Write(p []byte) (int, error) {
	fmt.Printf("[board] %s", p)
	return len(p), nil
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help           - Show this help message")
	fmt.Println("  quit/exit      - Exit the program")
	fmt.Println("  anything else  - Sent to the board one character at a time")
	fmt.Println("                   (0-9, A-Z and a-z are shown, digits also on the LED matrix)")
	fmt.Println()
}
