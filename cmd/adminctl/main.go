// adminctl creates local users directly against the database, for the rare
// case where the seeded admin account is not enough.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/paverbrasil/paveradmin/internal"
	"github.com/paverbrasil/paveradmin/internal/security"
	"github.com/paverbrasil/paveradmin/internal/settings"
	"github.com/paverbrasil/paveradmin/internal/store"

	"golang.org/x/term"

	_ "modernc.org/sqlite"
)

func main() {
	username := flag.String("username", "", "username for the new local user")
	name := flag.String("name", "", "display name for the new local user")
	email := flag.String("email", "", "email for the new local user")
	role := flag.String("role", store.RoleUser, "role for the new local user (user or admin)")
	flag.Parse()

	if *username == "" {
		log.Fatal("-username is required")
	}
	if *role != store.RoleUser && *role != store.RoleAdmin {
		log.Fatalf("invalid role %q", *role)
	}
	if *name == "" {
		*name = *username
	}

	password, err := promptPassword()
	if err != nil {
		log.Fatal(err)
	}

	settings.ReadDotenv(internal.DotEnvPath)
	settings.Settings = settings.NewSettings()
	rwdb := store.InitDatabase(false)
	defer rwdb.Close()
	store.RunMigrations(rwdb, internal.MigrationsDir)

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		log.Fatal(err)
	}

	userStore := store.NewUserSQLiteStore(rwdb, rwdb)
	user, err := userStore.CreateLocalUser(
		context.Background(),
		fmt.Sprintf("local-%s", *username),
		*username, passwordHash, *name, *email, *role,
	)
	if err != nil {
		if store.IsUniqueConstraintError(err) {
			log.Fatalf("user %q already exists", *username)
		}
		log.Fatal(err)
	}
	fmt.Printf("created user %s (id %d, role %s)\n", *username, user.ID, user.Role)
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password confirmation: %w", err)
	}
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if strings.TrimSpace(string(password)) == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(password), nil
}
