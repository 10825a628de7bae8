// File: app/app.go
package app

import (
	"go-bank-client/client"
	"go-bank-client/config"
	"go-bank-client/logger"
	"go-bank-client/repository"
	"go-bank-client/service"
	"net/http"
	"os"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	cfg := config.AppConfig

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}

	// --- Wiring All Layers Together ---
	// Repositories and collaborator clients first, then the services that
	// orchestrate them.

	credentialRepo := repository.NewFileCredentialRepository(cfg.Storage.CredentialFile)
	authClient := client.NewAuthClient(cfg.API.BaseURL, httpClient)

	// The credential service is the token provider for every
	// authenticated collaborator client.
	credentialService := service.NewCredentialService(authClient, credentialRepo)

	accountClient := client.NewAccountClient(cfg.API.BaseURL, httpClient, credentialService)
	transactionClient := client.NewTransactionClient(cfg.API.BaseURL, httpClient, credentialService)

	accountService := service.NewAccountService(accountClient, credentialService, cfg.Session.AutoLogoutOnExpiry)
	transactionService := service.NewTransactionService(transactionClient, accountService)

	// Adopt a persisted session, if any. The resulting credential change
	// triggers the first account refresh automatically.
	if credentialService.Restore() {
		logger.Log.Info("Existing session restored")
	}

	session := NewSession(credentialService, accountService, transactionService, os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		logger.Log.Fatalf("Session terminated with error: %v", err)
	}

	logger.Log.Info("Client exited properly")
}
