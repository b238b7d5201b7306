// Command tokengen prints a signed bearer token for the API, using the
// same JWT_SECRET and JWT_ISSUER the server reads. Meant for operators
// and local development:
//
//	tokengen -net-id mst3k -role student
//	tokengen -net-id registrar1 -role registrar -expiry 1h
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/sfaraj/registrar/config"
	"github.com/sfaraj/registrar/utils/auth"
)

func main() {
	netID := flag.String("net-id", "", "NetID the token is issued to")
	role := flag.String("role", auth.RoleStudent, "token role: student or registrar")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *netID == "" {
		log.Fatal("-net-id is required")
	}
	if *role != auth.RoleStudent && *role != auth.RoleRegistrar {
		log.Fatalf("unknown role %q: must be %s or %s", *role, auth.RoleStudent, auth.RoleRegistrar)
	}

	if err := config.LoadENV(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	issuer := getEnv.JWT_ISSUER
	if issuer == "" {
		issuer = auth.DefaultIssuer
	}

	manager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: *expiry,
		Issuer: issuer,
	})

	token, err := manager.GenerateToken(*netID, *role)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
