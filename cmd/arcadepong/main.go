package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/arcadepong/internal/app"
	"github.com/diegok/arcadepong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  arcadepong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --mode <mode>         single, two-player or timed (default: single)")
	fmt.Fprintln(os.Stderr, "  --difficulty <level>  easy, medium or hard (default: medium)")
	fmt.Fprintln(os.Stderr, "  --points <n>          Points to win (default: 5)")
	fmt.Fprintln(os.Stderr, "  --time <seconds>      Timed game length (default: 60)")
	fmt.Fprintln(os.Stderr, "  --fps <n>             Ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --settings <file>     Settings file (empty disables saving)")
	fmt.Fprintln(os.Stderr, "  --mute                Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>          Write a log file")
	fmt.Fprintln(os.Stderr, "  --record <file>       Record every frame")
	fmt.Fprintln(os.Stderr, "  --seed <n>            Random seed")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W/S, arrows, mouse   Move paddle (two-player: arrows move P2)")
	fmt.Fprintln(os.Stderr, "  Enter / click        Start or replay")
	fmt.Fprintln(os.Stderr, "  P / Space            Pause")
	fmt.Fprintln(os.Stderr, "  Esc                  Pause, back to menu, or quit from the menu")
	fmt.Fprintln(os.Stderr, "  M D C + -            Menu: mode, difficulty, colors, ball speed")
	fmt.Fprintln(os.Stderr, "  Q                    Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  arcadepong --mode timed --time 90 --difficulty hard")
	fmt.Fprintln(os.Stderr, "  arcadepong --mode two-player --points 11 --mute")
}
