package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"dogcommunity_api/types"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"cloud.google.com/go/logging"
)

// CreatePhotoProcessingTask enqueues one photo optimization job. The queue
// delivers it back to the service at the processing handler path.
func CreatePhotoProcessingTask(ctx context.Context, client *cloudtasks.Client, logger *logging.Logger, job types.PhotoProcessingJob) (*taskspb.Task, error) {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s", types.FIREBASE_PROJECT_ID, types.FIREBASE_LOCATION_ID, types.CLOUD_PHOTOS_QUEUE_ID)

	payload, err := json.Marshal(job)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error serializing PhotoProcessingJob",
			Labels:   map[string]string{"error": err.Error()},
		})
		return nil, err
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task: &taskspb.Task{
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        types.CLOUD_RUN_SERVICE_URL + types.CLOUD_TASKS_HANDLER_PATH,
					Body:       payload,
				},
			},
		},
	}

	createdTask, err := client.CreateTask(ctx, req)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error creating photo processing task",
			Labels:   map[string]string{"error": err.Error()},
		})
		return nil, err
	}

	return createdTask, nil
}
