// Command detect-mood prints the emotion label the classifier assigns to a piece of text.
//
// Usage:
//
//	detect-mood "I finally finished my thesis!"
//	echo "rainy days again" | detect-mood
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/justestif/moodtunes/internal/emotion"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := emotion.LoadConfig()
	if err != nil {
		return err
	}

	text, err := readText(args, stdin)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	detector := emotion.NewDetector(emotion.NewClient(cfg))
	mood, err := detector.DetectMood(ctx, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, mood)
	return nil
}

// readText joins the arguments, or reads stdin when there are none.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
