package firebase

import (
	"context"
	"fmt"

	"dogcommunity_api/types"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/logging"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
)

// InitFirebaseApp wires up every remote client the widget backend needs:
// Cloud Logging first so the remaining initialization can be reported, then
// the Firebase app, Firestore, Cloud Storage, Auth, Messaging and Cloud Tasks.
func InitFirebaseApp(ctx context.Context) (*types.FirebaseApp, error) {
	loggingClient, err := logging.NewClient(ctx, types.FIREBASE_PROJECT_ID)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging client: %v", err)
	}
	logger := loggingClient.Logger("dog-community-widget")

	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		logInitFailure(logger, "Firebase app", err)
		return nil, err
	}

	db, err := app.Firestore(ctx)
	if err != nil {
		logInitFailure(logger, "Firestore client", err)
		return nil, err
	}

	gcs, err := storage.NewClient(ctx)
	if err != nil {
		logInitFailure(logger, "Cloud Storage client", err)
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		logInitFailure(logger, "Auth client", err)
		return nil, err
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		logInitFailure(logger, "Messaging client", err)
		return nil, err
	}

	taskClient, err := cloudtasks.NewClient(ctx)
	if err != nil {
		logInitFailure(logger, "Cloud Tasks client", err)
		return nil, err
	}

	logger.Log(logging.Entry{
		Severity: logging.Info,
		Payload:  "Firebase clients initialized successfully",
		Labels:   map[string]string{"status": "success"},
	})

	return &types.FirebaseApp{
		Admin:         app,
		DB:            db,
		Storage:       gcs,
		Auth:          authClient,
		Logger:        logger,
		MessageClient: messagingClient,
		TaskClient:    taskClient,
	}, nil
}

func logInitFailure(logger *logging.Logger, component string, err error) {
	logger.Log(logging.Entry{
		Severity: logging.Error,
		Payload:  "Error initializing " + component,
		Labels:   map[string]string{"error": err.Error()},
	})
}
