package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tummy-arcade/internal/content"
)

var (
	flagName     string
	flagEmail    string
	flagPassword string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in to the content service",
	Long: `Manage the account session stored in ~/.tummy/session.yaml.

Examples:
  tummy auth register --name Sam --email sam@example.com
  tummy auth login --email sam@example.com
  tummy auth whoami
  tummy auth logout`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and save the session",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&flagEmail, "email", "", "Account email")
		c.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted if empty)")
	}
	registerCmd.Flags().StringVar(&flagName, "name", "", "Display name")

	authCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	email, password, err := credentials()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	resp, err := newClient().Login(ctx, email, password)
	if err != nil {
		return describeAuthError(err)
	}
	return finishAuth(resp, "login")
}

func runRegister(cmd *cobra.Command, _ []string) error {
	name := flagName
	if name == "" {
		var err error
		if name, err = prompt("Name: "); err != nil {
			return err
		}
	}
	email, password, err := credentials()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	resp, err := newClient().Register(ctx, name, email, password)
	if err != nil {
		return describeAuthError(err)
	}
	return finishAuth(resp, "signup")
}

func runLogout(_ *cobra.Command, _ []string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := content.ClearSession(path); err != nil {
		return err
	}
	trackAuth("logout")
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	s, ok, err := content.LoadSession(path)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	user, err := newClient().Me(ctx, s.Token)
	switch {
	case errors.Is(err, content.ErrInvalidCredentials), errors.Is(err, content.ErrNotFound):
		fmt.Println("Session expired. Run 'tummy auth login' again.")
		return nil
	case err != nil:
		fmt.Printf("%s <%s> (offline: %v)\n", s.User.Name, s.User.Email, err)
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func finishAuth(resp content.AuthResponse, action string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := content.SaveSession(path, content.Session{Token: resp.Token, User: resp.User}); err != nil {
		return err
	}
	trackAuth(action)
	fmt.Printf("%s. Welcome, %s!\n", resp.Message, resp.User.Name)
	return nil
}

func trackAuth(action string) {
	store := openStore()
	defer closeStore(store)
	tracker, flush := newTracker(store)
	defer flush()
	tracker.Auth(action)
}

// describeAuthError turns client errors into messages for the terminal.
func describeAuthError(err error) error {
	var apiErr *content.APIError
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return fmt.Errorf("cannot reach content service at %s: %w", flagAPI, err)
}

func credentials() (email, password string, err error) {
	email = flagEmail
	if email == "" {
		if email, err = prompt("Email: "); err != nil {
			return "", "", err
		}
	}

	password = flagPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", "", fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}
	return email, password, nil
}

var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
