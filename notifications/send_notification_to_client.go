package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dogcommunity_api/tools"
	"dogcommunity_api/types"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	"firebase.google.com/go/messaging"
)

// SendPhotoReadyNotification pushes the processed-photo message to the widget
// over FCM, using the registration token the widget stored earlier.
func SendPhotoReadyNotification(ctx context.Context, client *messaging.Client, db *firestore.Client, logger *logging.Logger, data types.PhotoReadyMessage) error {
	registrationToken, err := tools.GetFirestoreDocument(ctx, db, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, types.FIREBASE_MESSAGING_TOKEN_DOCUMENT)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error getting registration token from firestore",
			Labels:   map[string]string{"error": err.Error()},
		})
		return err
	}

	tokenStr, ok := registrationToken["token"].(string)
	if !ok || tokenStr == "" {
		errorMsg := "registration token is empty or invalid"
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error sending photo ready message to client",
			Labels:   map[string]string{"error": errorMsg},
		})
		return errors.New(errorMsg)
	}

	dataJson, err := json.Marshal(data)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error converting data to JSON",
			Labels:   map[string]string{"error": err.Error()},
		})
		return fmt.Errorf("error converting data to JSON: %w", err)
	}

	message := &messaging.Message{
		Data:  map[string]string{"data": string(dataJson)},
		Token: tokenStr,
	}

	_, err = client.Send(ctx, message)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error sending photo ready message to client",
			Labels:   map[string]string{"error": err.Error()},
		})
		return fmt.Errorf("error sending photo ready message to client: %w", err)
	}

	return nil
}
