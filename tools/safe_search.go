package tools

import (
	"bytes"
	"context"
	"image"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/disintegration/imaging"
)

// IsPhotoUnsafe runs Vision SafeSearch over an uploaded photo and reports
// whether it must be removed from the gallery. The widget embeds on public
// pages, so anything rated LIKELY or worse for adult or violent content is
// rejected. Returns the offending category for the log entry.
func IsPhotoUnsafe(ctx context.Context, img image.Image) (bool, string, error) {
	client, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return false, "", err
	}
	defer client.Close()

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return false, "", err
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{
					Content: buf.Bytes(),
				},
				Features: []*visionpb.Feature{
					{
						Type: visionpb.Feature_SAFE_SEARCH_DETECTION,
					},
				},
			},
		},
	}

	resp, err := client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return false, "", err
	}

	if len(resp.Responses) == 0 {
		return false, "", nil
	}

	annotation := resp.Responses[0].GetSafeSearchAnnotation()
	if annotation == nil {
		return false, "", nil
	}

	if annotation.Adult >= visionpb.Likelihood_LIKELY {
		return true, "adult", nil
	}
	if annotation.Violence >= visionpb.Likelihood_LIKELY {
		return true, "violence", nil
	}

	return false, "", nil
}
