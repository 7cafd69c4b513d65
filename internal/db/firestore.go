package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jazbaa/showcase/internal/config"
	"google.golang.org/api/option"
)

// NewFirestoreClient opens a Firestore client for the configured project.
// An explicit credentials file takes precedence over application default credentials.
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}

	databaseID := cfg.Firestore.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.Firestore.ProjectID, databaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return client, nil
}
