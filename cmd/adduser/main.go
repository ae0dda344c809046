// Command adduser creates a FitTrack account from the terminal. It is meant
// for operators seeding accounts without going through the HTTP API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fittrackhq/fittrack/internal/server/auth"
	"github.com/fittrackhq/fittrack/internal/server/config"
	"github.com/fittrackhq/fittrack/internal/server/repositories/repomanager"
	"github.com/fittrackhq/fittrack/internal/server/services"
	"github.com/fittrackhq/fittrack/internal/validate"
	"golang.org/x/term"
)

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Println(label)
	fmt.Print("> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Println(label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	reader := bufio.NewReader(os.Stdin)

	email, err := prompt(reader, "Enter email")
	if err != nil {
		log.Fatalf("%v", err)
	}
	firstName, err := prompt(reader, "Enter first name")
	if err != nil {
		log.Fatalf("%v", err)
	}
	lastName, err := prompt(reader, "Enter last name")
	if err != nil {
		log.Fatalf("%v", err)
	}
	password, err := promptPassword("Enter password")
	if err != nil {
		log.Fatalf("%v", err)
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		log.Fatalf("%v", err)
	}

	if errs := validate.Registration(email, password, confirm, firstName, lastName); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	rm, db, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	us := services.NewUserService(db, rm, auth.NewBcryptHasher())

	user, err := us.Register(ctx, services.RegisterParams{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
		FirstName:       firstName,
		LastName:        lastName,
	})
	if err != nil {
		log.Fatalf("error creating user: %v", err)
	}

	fmt.Printf("Created user %s (%s)\n", user.Email, user.ID)
}
