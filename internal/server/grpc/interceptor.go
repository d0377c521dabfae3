package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/snapfeed/snapfeed/internal/common"
	pb "github.com/snapfeed/snapfeed/internal/proto"
	"github.com/snapfeed/snapfeed/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// methods that can be called without an access token
var openMethods = map[string]bool{
	pb.SnapfeedService_Register_FullMethodName:     true,
	pb.SnapfeedService_Login_FullMethodName:        true,
	pb.SnapfeedService_RefreshToken_FullMethodName: true,
	pb.SnapfeedService_Ping_FullMethodName:         true,
}

func (s *GRPCServer) authorize(ctx context.Context) (context.Context, error) {

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		// the exact expired-token message lets the client know a refresh
		// is worth attempting
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, userIDKey, userID), nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {
		authedCtx, err := s.authorize(ctx)
		if err != nil {
			return nil, err
		}
		ctx = authedCtx
	}

	return handler(ctx, req)
}

type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	if !openMethods[info.FullMethod] {
		authedCtx, err := s.authorize(ss.Context())
		if err != nil {
			return err
		}
		ss = &wrappedStream{ServerStream: ss, ctx: authedCtx}
	}

	return handler(srv, ss)
}

// userIDFromContext returns the authenticated user id stored by the interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
