// Command server runs the glossary backend HTTP server.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) plus environment
// variables. Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/glossary-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
