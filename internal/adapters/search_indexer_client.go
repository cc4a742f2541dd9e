package adapters

import (
	"context"

	"github.com/architeacher/svc-booking-messaging/internal/config"
	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

const searchSnapshotsPath = "/v1/snapshots"

type SearchIndexerClient struct {
	collaborator *collaboratorClient
}

var _ ports.SearchIndexer = (*SearchIndexerClient)(nil)

func NewSearchIndexerClient(cfg config.CollaboratorConfig, logger infrastructure.Logger, metrics infrastructure.Metrics) *SearchIndexerClient {
	return &SearchIndexerClient{
		collaborator: newCollaboratorClient("search_indexer", cfg, logger, metrics),
	}
}

func (c *SearchIndexerClient) IndexSnapshot(ctx context.Context, event domain.HotelSearchSnapshotEvent) error {
	return c.collaborator.post(ctx, searchSnapshotsPath, event)
}
