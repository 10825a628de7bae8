// File: app/session.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"go-bank-client/common"
	"go-bank-client/model"
	"go-bank-client/service"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Session is the interactive terminal front end. All state flows through
// the three core services; the session only renders and collects input.
type Session struct {
	credentials  *service.CredentialService
	accounts     *service.AccountService
	transactions *service.TransactionService

	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a new Session reading commands from in and rendering
// to out.
func NewSession(credentials *service.CredentialService, accounts *service.AccountService, transactions *service.TransactionService, in io.Reader, out io.Writer) *Session {
	return &Session{
		credentials:  credentials,
		accounts:     accounts,
		transactions: transactions,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run drives the login screen / main screen loop until the user quits or
// input ends.
func (s *Session) Run() error {
	ctx := context.Background()

	for {
		if _, ok := s.credentials.Token(); !ok {
			if err := s.loginScreen(ctx); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			continue
		}
		quit, err := s.mainScreen(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *Session) loginScreen(ctx context.Context) error {
	fmt.Fprintln(s.out, "== Customer Access ==")

	email, err := s.prompt("Email: ")
	if err != nil {
		return err
	}
	password, err := s.promptSecret("Password: ")
	if err != nil {
		return err
	}

	loginErr := s.credentials.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if loginErr != nil {
		// Rejected credentials and an unreachable server render the
		// same; the log keeps them apart.
		switch common.KindOf(loginErr) {
		case common.KindInvalidCredentials, common.KindRemoteFailure:
			fmt.Fprintln(s.out, "Incorrect credentials or server down")
		default:
			fmt.Fprintln(s.out, loginErr.Error())
		}
	}
	return nil
}

func (s *Session) mainScreen(ctx context.Context) (bool, error) {
	s.renderAccounts()

	choice, err := s.prompt("[t]ransfer  [r]efresh  [l]ogout  [q]uit > ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(choice) {
	case "t":
		if err := s.transferForm(ctx); err != nil {
			return false, err
		}
	case "r":
		if err := s.accounts.Refresh(ctx); err != nil {
			fmt.Fprintln(s.out, "Refresh failed:", err.Error())
		}
	case "l":
		s.credentials.Logout()
		fmt.Fprintln(s.out, "Logged out")
	case "q":
		return true, nil
	}
	return false, nil
}

func (s *Session) renderAccounts() {
	fmt.Fprintln(s.out, "== My Bank ==")
	if s.accounts.SessionExpired() {
		fmt.Fprintln(s.out, "Your session expired or the token is not valid.")
	}
	for _, account := range s.accounts.Accounts() {
		fmt.Fprintf(s.out, "SAVINGS ACCOUNT (ID: %d)\n", account.ID)
		fmt.Fprintf(s.out, "  $ %.2f\n", account.Balance)
		fmt.Fprintf(s.out, "  %s\n", account.MaskedNumber())
	}
}

func (s *Session) transferForm(ctx context.Context) error {
	targetRaw, err := s.prompt("Target account ID: ")
	if err != nil {
		return err
	}
	amountRaw, err := s.prompt("Amount: ")
	if err != nil {
		return err
	}

	targetID, err := strconv.Atoi(targetRaw)
	if err != nil {
		fmt.Fprintln(s.out, "Target account ID must be a number")
		return nil
	}
	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Amount must be a number")
		return nil
	}

	submitErr := s.transactions.Submit(ctx, model.TransferRequest{
		TargetAccountID: targetID,
		Amount:          amount,
	})
	if submitErr != nil {
		fmt.Fprintln(s.out, "Error:", submitErr.Error())
		return nil
	}
	fmt.Fprintln(s.out, "Transfer successful!")
	return nil
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a secret without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, pipes).
func (s *Session) promptSecret(label string) (string, error) {
	fmt.Fprint(s.out, label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(s.out)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
