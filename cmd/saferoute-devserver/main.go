package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/devserver"
)

func main() {
	if err := devserver.Run(); err != nil {
		log.Error().Err(err).Msg("saferoute-devserver exited with error")
		os.Exit(1)
	}
}
