// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize a Google account against the
// configured OAuth client and save its token set.
//
// Usage:
//   go run scripts/gcal-auth/main.go [output-path]
//
// It prints a consent URL, you log in with the Google account you want
// to sync, paste the authorization code, and the token set is saved as
// JSON in the same shape the batch endpoints accept.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"multi-calendar-sync/config"
	"multi-calendar-sync/pkg/googleauth"
)

func main() {
	tokenPath := "tokens.json"
	if len(os.Args) > 1 {
		tokenPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	binder := googleauth.NewBinder(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	authURL := binder.AuthCodeURL(uuid.NewString())
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and log in with the Google")
	fmt.Println("account you want to sync:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tokenSet, err := binder.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tokenSet); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token set saved at: %s\n", tokenPath)
	fmt.Println("Pass it inside the users array of POST /get_calendars or the")
	fmt.Println("userTokens array of POST /create_event.")
}
