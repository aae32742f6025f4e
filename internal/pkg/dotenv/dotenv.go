package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

// ErrNotFound ни одного файла нет, конфигурация целиком из окружения.
var ErrNotFound = errors.New("env file not found")

// флаги командной строки сильнее и файла, и окружения
var flagOverrides = map[string]string{
	"port":          "PORT",
	"log-level":     "LOG_LEVEL",
	"delhivery-env": "DELHIVERY_ENV",
}

// Load подхватывает существующие из files (по умолчанию .env), затем применяет флаги.
// Уже заданные переменные окружения файл не перетирает.
func Load(files ...string) error {
	return load(files, os.Args[1:])
}

func load(files, args []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	var notFound error
	if len(existing) == 0 {
		notFound = ErrNotFound
	} else if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load %v: %w", existing, err)
	}

	if err := applyFlags(args); err != nil {
		return err
	}
	return notFound
}

func applyFlags(args []string) error {
	fs := flag.NewFlagSet("shipment", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	values := make(map[string]*string, len(flagOverrides))
	for name, env := range flagOverrides {
		values[name] = fs.String(name, "", fmt.Sprintf("overrides %s", env))
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for name, value := range values {
		if *value == "" {
			continue
		}
		if err := os.Setenv(flagOverrides[name], *value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", flagOverrides[name], err)
		}
	}
	return nil
}
