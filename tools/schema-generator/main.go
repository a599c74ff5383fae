package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/semcommit/config"
	"github.com/grovetools/semcommit/logging"
)

// Writes the configuration schemas shipped with the repository. Run from the
// module root via `go generate ./config/...`.
func main() {
	outputs := []struct {
		path     string
		generate func() ([]byte, error)
	}{
		{filepath.Join("schema", "definitions", "semcommit.schema.json"), config.GenerateSchema},
		{filepath.Join("schema", "definitions", "logging.schema.json"), logging.GenerateSchema},
	}

	for _, out := range outputs {
		data, err := out.generate()
		if err != nil {
			log.Fatalf("Error generating %s: %v", out.path, err)
		}
		if err := os.MkdirAll(filepath.Dir(out.path), 0755); err != nil {
			log.Fatalf("Error creating schema directory: %v", err)
		}
		if err := os.WriteFile(out.path, append(data, '\n'), 0644); err != nil {
			log.Fatalf("Error writing schema file: %v", err)
		}
		log.Printf("Successfully generated schema at %s", out.path)
	}
}
