package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/userdata-api/internal/errs"
)

func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, errs.NewConnectionError("failed to create firestore client", err)
	}
	return client, nil
}
