// Command admintoken prints a signed session token for the "token" cookie.
//
//	JWT_SECRET=... go run ./cmd/admintoken -sub editor-001
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"true-feelings/auth"
	"true-feelings/config"
)

func main() {
	sub := flag.String("sub", "", "token subject (required)")
	role := flag.String("role", auth.RoleAdmin, "token role: admin or user")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to auth.token_ttl")
	flag.Parse()

	if *sub == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *role != auth.RoleAdmin && *role != auth.RoleUser {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load(config.GetBasePath())
	if err != nil {
		log.Fatal(err)
	}
	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	m, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, lifetime)
	if err != nil {
		log.Fatal(err)
	}
	token, err := m.Sign(*sub, *role)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(lifetime).UTC().Format(time.RFC3339))
}
