// Command moodtunes runs the MoodTunes web application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/justestif/moodtunes/internal/songs"
	"github.com/justestif/moodtunes/internal/web"
	"github.com/justestif/moodtunes/internal/youtube"
	webfs "github.com/justestif/moodtunes/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	ytCfg, err := youtube.LoadConfig()
	if err != nil {
		return err
	}

	yt, err := youtube.NewClient(context.Background(), ytCfg)
	if err != nil {
		return fmt.Errorf("creating youtube client: %w", err)
	}

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = web.DefaultAddr
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:        addr,
		Finder:      songs.NewFinder(yt),
		TemplatesFS: templates,
		StaticFS:    static,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	log.Printf("Song search ready (max %d results per mood)", songs.MaxSongs)
	return server.Run()
}
