// Command issue_token prints a bearer token for a user of the ledger API.
// It signs with the same JWT_SECRET and JWT_ISSUER as the server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/platform/config"
	"github.com/SscSPs/school_fund_ledger/internal/utils"
)

func main() {
	userID := flag.String("user", "", "user ID to put in the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*userID, cfg.JWTSecret, cfg.JWTIssuer, time.Now(), *ttl)
	if err != nil {
		slog.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
