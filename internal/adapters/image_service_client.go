package adapters

import (
	"context"
	"net/url"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

type ImageServiceClient struct {
	collaborator *collaboratorClient
}

var _ ports.ImageProcessor = (*ImageServiceClient)(nil)

func NewImageServiceClient(cfg config.CollaboratorConfig, logger infrastructure.Logger, metrics infrastructure.Metrics) *ImageServiceClient {
	return &ImageServiceClient{
		collaborator: newCollaboratorClient("image_service", cfg, logger, metrics),
	}
}

// ProcessImage asks the image service to fetch the source and render the requested variants.
func (c *ImageServiceClient) ProcessImage(ctx context.Context, job domain.ImageProcessingJob) error {
	return c.collaborator.post(ctx, "/v1/images/"+url.PathEscape(job.ImageID)+"/process", job)
}
