package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/snapfeed/snapfeed/internal/logging"
	pb "github.com/snapfeed/snapfeed/internal/proto"
	"github.com/snapfeed/snapfeed/internal/server/documents"
	"github.com/snapfeed/snapfeed/internal/server/users"
)

// userSvc is the slice of users.Service the transport needs.
type userSvc interface {
	Register(ctx context.Context, username, password, displayName, email string) (*users.User, error)
	Login(ctx context.Context, username, password string) (*users.User, *users.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*users.TokenPair, error)
	UpdateAccount(ctx context.Context, id string, displayName, photoURL string) error
}

// documentSvc is the slice of documents.Service the transport needs.
type documentSvc interface {
	Get(ctx context.Context, collection, id string) (*documents.Document, error)
	Set(ctx context.Context, collection, id string, fields []byte, merge bool) error
	Add(ctx context.Context, collection string, fields []byte) (string, error)
	Snapshot(ctx context.Context, collection string, filter documents.Filter) ([]*documents.Document, error)
	Changes(collection string) (<-chan struct{}, func())
}

type GRPCServer struct {
	pb.UnimplementedSnapfeedServiceServer
	address   string
	users     userSvc
	documents documentSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *users.Service, ds *documents.Service, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		documents: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	pb.RegisterSnapfeedServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
