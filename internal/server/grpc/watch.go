package grpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/snapfeed/snapfeed/internal/proto"
	"github.com/snapfeed/snapfeed/internal/server/documents"
)

// Watch streams the full matched set to the client: one snapshot right away,
// then a fresh snapshot after every write to the collection. Notifications
// are coalesced, so a burst of writes may produce a single re-send.
func (s *GRPCServer) Watch(req *pb.WatchRequest, stream pb.SnapfeedService_WatchServer) error {

	ctx := stream.Context()

	filter := documents.Filter{Field: req.FilterField, Value: req.FilterValue}

	changes, cancel := s.documents.Changes(req.Collection)
	defer cancel()

	s.logger.Info(ctx, "Watch opened", "collection", req.Collection)
	defer s.logger.Info(ctx, "Watch closed", "collection", req.Collection)

	send := func() error {
		docs, err := s.documents.Snapshot(ctx, req.Collection, filter)
		if err != nil {
			s.logger.Error(ctx, err.Error())
			return status.Error(codes.Internal, "internal error")
		}
		return stream.Send(snapshotToPb(docs))
	}

	if err := send(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := send(); err != nil {
				return err
			}
		}
	}
}
