package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/common"
	pb "github.com/snapfeed/snapfeed/internal/proto"
)

// GRPCClient implements Client over the Snapfeed gRPC endpoint. It injects
// the access token into every call and transparently refreshes the token
// pair when the server reports it expired.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SnapfeedServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     func(accessToken, refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// SetTokens seeds the token pair, e.g. from a persisted session.
func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// Tokens returns the current token pair.
func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// OnTokensChanged registers a hook invoked whenever the token pair changes
// (login or transparent refresh), so the session store can persist it.
func (s *GRPCClient) OnTokensChanged(fn func(accessToken, refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTokens = fn
}

func (s *GRPCClient) setTokensLocked(accessToken, refreshToken string) {
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	if s.onTokens != nil {
		s.onTokens(accessToken, refreshToken)
	}
}

// tokenExpired reports whether err is the server's expired-access-token reply.
func tokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// refresh exchanges the refresh token for a new pair. Returns false when no
// refresh token is available or the exchange failed.
func (s *GRPCClient) refresh(ctx context.Context) bool {
	s.mu.Lock()
	refreshToken := s.refreshToken
	s.mu.Unlock()

	if refreshToken == "" {
		return false
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return false
	}

	s.mu.Lock()
	s.setTokensLocked(resp.AccessToken, resp.RefreshToken)
	s.mu.Unlock()
	return true
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	s.mu.Lock()
	token := s.accessToken
	s.mu.Unlock()

	err := invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)

	if err != nil && tokenExpired(err) && s.refresh(ctx) {
		s.mu.Lock()
		token = s.accessToken
		s.mu.Unlock()
		return invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
	}

	return err
}

func (s *GRPCClient) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {

	s.mu.Lock()
	token := s.accessToken
	s.mu.Unlock()

	// an expired token on a stream surfaces at Recv, not here;
	// grpcWatchStream.Recv handles the refresh
	return streamer(withAccessToken(ctx, token), desc, cc, method, opts...)
}

func NewSnapfeedClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSnapfeedServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username, password, displayName, email string) (string, error) {

	req := &pb.RegisterRequest{Username: username, Password: password, DisplayName: displayName, Email: email}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (*models.Identity, error) {

	req := &pb.LoginRequest{Username: username, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.mu.Lock()
	s.setTokensLocked(resp.AccessToken, resp.RefreshToken)
	s.mu.Unlock()

	acc := resp.GetAccount()
	return &models.Identity{
		UserID:      acc.GetId(),
		Username:    acc.GetUsername(),
		DisplayName: acc.GetDisplayName(),
		PhotoURL:    acc.GetPhotoUrl(),
		Email:       acc.GetEmail(),
	}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) UpdateAccount(ctx context.Context, displayName, photoURL string) error {

	req := &pb.UpdateAccountRequest{DisplayName: displayName, PhotoUrl: photoURL}

	_, err := s.client.UpdateAccount(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) GetDocument(ctx context.Context, collection, id string) (*Document, error) {

	req := &pb.GetDocumentRequest{Collection: collection, Id: id}

	resp, err := s.client.GetDocument(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	if !resp.GetFound() {
		return nil, nil
	}

	doc := resp.GetDocument()
	return &Document{ID: doc.GetId(), Fields: doc.GetFields()}, nil
}

func (s *GRPCClient) SetDocument(ctx context.Context, collection, id string, fields []byte, merge bool) error {

	req := &pb.SetDocumentRequest{Collection: collection, Id: id, Fields: fields, Merge: merge}

	_, err := s.client.SetDocument(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) AddDocument(ctx context.Context, collection string, fields []byte) (string, error) {

	req := &pb.AddDocumentRequest{Collection: collection, Fields: fields}

	resp, err := s.client.AddDocument(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetId(), nil
}

type grpcWatchStream struct {
	ctx    context.Context
	stream pb.SnapfeedService_WatchClient
	parent *GRPCClient
}

func (w *grpcWatchStream) Recv() ([]Document, error) {
	resp, err := w.stream.Recv()
	if err != nil {
		// the server rejects an expired token at Recv time; refresh the
		// pair here so the caller's resubscribe carries the new token
		if tokenExpired(err) && w.parent.refresh(w.ctx) {
			return nil, ErrUnavailable
		}
		return nil, w.parent.mapError(err)
	}

	docs := make([]Document, 0, len(resp.GetDocuments()))
	for _, d := range resp.GetDocuments() {
		docs = append(docs, Document{ID: d.GetId(), Fields: d.GetFields()})
	}
	return docs, nil
}

func (s *GRPCClient) Watch(ctx context.Context, collection, filterField, filterValue string) (WatchStream, error) {

	req := &pb.WatchRequest{Collection: collection, FilterField: filterField, FilterValue: filterValue}

	stream, err := s.client.Watch(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &grpcWatchStream{ctx: ctx, stream: stream, parent: s}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
