/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mikeb26/senticl-drawbot/prefs"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":    handleHelp,
	"teams":   handleTeams,
	"fixture": handleFixture,
	"rules":   handleRules,
	"prefs":   handlePrefs,
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("drawtd: ignoring .env: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// storeBackend returns DRAWTD_STORE, defaulting to a sqlite database under the
// user's config directory.
func storeBackend() string {
	if backend := os.Getenv("DRAWTD_STORE"); backend != "" {
		return backend
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "memory"
	}
	dir = filepath.Join(dir, "drawtd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("drawtd: cannot create %v (%v); selections won't be saved", dir, err)
		return "memory"
	}
	return "sqlite:" + filepath.Join(dir, "prefs.db")
}

func openStore(ctx context.Context) (*prefs.Store, io.Closer) {
	store, closer, err := prefs.OpenStore(ctx, storeBackend())
	if err != nil {
		log.Fatalf("Error opening saved selections: %v", err)
	}
	return store, closer
}
