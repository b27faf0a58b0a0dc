// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelpix/main.go
// Summary: Entry point that runs the pixel grid editor on the local terminal.
// Usage: texelpix [-app pixelgrid] [-log path] [title]

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/framegrace/texelpix/config"
	"github.com/framegrace/texelpix/internal/devshell"
)

func main() {
	sys := config.System()
	appName := flag.String("app", sys.GetString("", "defaultApp", "pixelgrid"), "name of the app to run")
	logPath := flag.String("log", sys.GetString("", "logFile", "texelpix.log"), "log file path (empty disables logging)")
	list := flag.Bool("list", false, "list available apps and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(devshell.Apps(), "\n"))
		return
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "texelpix: stdout is not a terminal")
		os.Exit(1)
	}

	if file, err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "texelpix: %v\n", err)
		os.Exit(1)
	} else if file != nil {
		defer file.Close()
	}
	if err := config.Err(); err != nil {
		log.Printf("Config: %v", err)
	}

	if err := devshell.RunApp(*appName, flag.Args()); err != nil {
		log.Printf("texelpix: %v", err)
		fmt.Fprintf(os.Stderr, "texelpix: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to path. The terminal belongs to the
// app, so an empty path discards log output.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
