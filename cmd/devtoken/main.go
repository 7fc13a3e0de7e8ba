// Command devtoken mints an access token for local testing against the API.
//
//	go run ./cmd/devtoken -user 64f0c... -role admin
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/config"
	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id claim")
	roleFlag := flag.String("role", string(user.RoleWorker), "worker, admin or superadmin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	role, ok := user.ParseRole(*roleFlag)
	if *userID == "" || !ok {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret).GenerateAccessToken(*userID, role, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error signing token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr, "expires", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
