package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/architeacher/svc-booking-messaging/internal/domain"
	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/mocks"
)

type SubscriberServiceTestSuite struct {
	suite.Suite
	images  *mocks.FakeImageProcessor
	indexer *mocks.FakeSearchIndexer
	service SubscriberService
}

func TestSubscriberServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SubscriberServiceTestSuite))
}

func (s *SubscriberServiceTestSuite) SetupTest() {
	s.images = &mocks.FakeImageProcessor{}
	s.indexer = &mocks.FakeSearchIndexer{}
	s.service = NewSubscriberService(s.images, s.indexer, infrastructure.NewTestLogger())
}

func (s *SubscriberServiceTestSuite) TestProcessImageJob() {
	job := domain.ImageProcessingJob{
		ImageID:   "img_1",
		HotelID:   "htl_1",
		SourceURL: "https://cdn.example.com/img_1.jpg",
		Variants:  []string{"thumb", "hero"},
	}

	s.Require().NoError(s.service.ProcessImageJob(context.Background(), job))

	s.Require().Equal(1, s.images.ProcessImageCallCount())
	_, got := s.images.ProcessImageArgsForCall(0)
	s.Equal(job, got)
}

func (s *SubscriberServiceTestSuite) TestProcessImageJob_InvalidIsPermanent() {
	err := s.service.ProcessImageJob(context.Background(), domain.ImageProcessingJob{HotelID: "htl_1"})

	s.ErrorIs(err, domain.ErrInvalidMessage)
	s.True(domain.IsPermanent(err))
	s.Zero(s.images.ProcessImageCallCount())
}

func (s *SubscriberServiceTestSuite) TestProcessImageJob_CollaboratorFailureIsRetryable() {
	s.images.ProcessImageReturns(domain.NewCollaboratorError("image-service", 503, errors.New("unavailable")))

	err := s.service.ProcessImageJob(context.Background(), domain.ImageProcessingJob{
		ImageID:   "img_1",
		SourceURL: "https://cdn.example.com/img_1.jpg",
	})

	s.ErrorIs(err, domain.ErrCollaboratorUnavailable)
	s.False(domain.IsPermanent(err))
}

func (s *SubscriberServiceTestSuite) TestIndexSearchSnapshot() {
	event := domain.HotelSearchSnapshotEvent{
		SnapshotID: "snap_1",
		SearchID:   "search_1",
		CapturedAt: time.Now().UTC(),
		Hotels:     []domain.HotelSnapshot{{HotelID: "htl_1", Price: 120, Currency: "EUR", Available: true}},
	}

	s.Require().NoError(s.service.IndexSearchSnapshot(context.Background(), event))
	s.Equal(1, s.indexer.IndexSnapshotCallCount())
}

func (s *SubscriberServiceTestSuite) TestIndexSearchSnapshot_EmptyIsAcknowledged() {
	s.Require().NoError(s.service.IndexSearchSnapshot(context.Background(), domain.HotelSearchSnapshotEvent{SnapshotID: "snap_1"}))
	s.Zero(s.indexer.IndexSnapshotCallCount())
}

func (s *SubscriberServiceTestSuite) TestIndexSearchSnapshot_Invalid() {
	err := s.service.IndexSearchSnapshot(context.Background(), domain.HotelSearchSnapshotEvent{})

	s.True(domain.IsPermanent(err))
}

func (s *SubscriberServiceTestSuite) TestIndexSearchSnapshot_RejectedIsPermanent() {
	s.indexer.IndexSnapshotReturns(domain.NewCollaboratorRejectedError("search-indexer", 422, errors.New("bad document")))

	err := s.service.IndexSearchSnapshot(context.Background(), domain.HotelSearchSnapshotEvent{
		SnapshotID: "snap_1",
		Hotels:     []domain.HotelSnapshot{{HotelID: "htl_1"}},
	})

	s.True(domain.IsPermanent(err))
}
