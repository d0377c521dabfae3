package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/snapfeed/snapfeed/internal/common"
	pb "github.com/snapfeed/snapfeed/internal/proto"
	"github.com/snapfeed/snapfeed/internal/server/documents"
	"github.com/snapfeed/snapfeed/internal/server/users"
)

// ---- fakes ----

type fakeUsers struct {
	regResp *users.User
	regErr  error

	loginUser   *users.User
	loginTokens *users.TokenPair
	loginErr    error

	refreshResp *users.TokenPair
	refreshErr  error

	updateErr    error
	updatedID    string
	updatedName  string
	updatedPhoto string
}

func (f *fakeUsers) Register(ctx context.Context, username, password, displayName, email string) (*users.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(ctx context.Context, username, password string) (*users.User, *users.TokenPair, error) {
	return f.loginUser, f.loginTokens, f.loginErr
}

func (f *fakeUsers) Refresh(ctx context.Context, refreshToken string) (*users.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUsers) UpdateAccount(ctx context.Context, id string, displayName, photoURL string) error {
	f.updatedID = id
	f.updatedName = displayName
	f.updatedPhoto = photoURL
	return f.updateErr
}

type fakeDocuments struct {
	getResp *documents.Document
	getErr  error

	setErr error

	addID  string
	addErr error

	snapResp []*documents.Document
	snapErr  error
	snapFn   func(collection string, filter documents.Filter)
}

func (f *fakeDocuments) Get(ctx context.Context, collection, id string) (*documents.Document, error) {
	return f.getResp, f.getErr
}

func (f *fakeDocuments) Set(ctx context.Context, collection, id string, fields []byte, merge bool) error {
	return f.setErr
}

func (f *fakeDocuments) Add(ctx context.Context, collection string, fields []byte) (string, error) {
	return f.addID, f.addErr
}

func (f *fakeDocuments) Snapshot(ctx context.Context, collection string, filter documents.Filter) ([]*documents.Document, error) {
	if f.snapFn != nil {
		f.snapFn(collection, filter)
	}
	return f.snapResp, f.snapErr
}

func (f *fakeDocuments) Changes(collection string) (<-chan struct{}, func()) {
	ch := make(chan struct{})
	return ch, func() {}
}

// ---- helpers ----

func newServer(u userSvc, d documentSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		documents: d,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeDocuments{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	u := &fakeUsers{regResp: &users.User{ID: "42", UserName: "alice"}}
	s := newServer(u, &fakeDocuments{})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{
		Username: "alice", Password: "pw", DisplayName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUserId() != "42" {
		t.Fatalf("unexpected user id: %q", resp.GetUserId())
	}
}

func TestRegister_TakenAndInternal(t *testing.T) {
	s := newServer(&fakeUsers{regErr: common.ErrorAlreadyExists}, &fakeDocuments{})
	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUsers{regErr: errors.New("db down")}, &fakeDocuments{})
	_, err = s2.Register(context.Background(), &pb.RegisterRequest{Username: "alice"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUsers{
		loginUser:   &users.User{ID: "42", UserName: "alice", DisplayName: "Alice", PhotoURL: "http://p"},
		loginTokens: &users.TokenPair{AccessToken: "A", RefreshToken: "R"},
	}
	s := newServer(u, &fakeDocuments{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "A" || resp.GetRefreshToken() != "R" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
	if resp.GetAccount().GetId() != "42" || resp.GetAccount().GetDisplayName() != "Alice" {
		t.Fatalf("unexpected account: %+v", resp.GetAccount())
	}
}

func TestLogin_UnauthorizedAndInternal(t *testing.T) {
	s := newServer(&fakeUsers{loginErr: common.ErrorUnauthorized}, &fakeDocuments{})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUsers{loginErr: errors.New("boom")}, &fakeDocuments{})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestRefreshToken_OK(t *testing.T) {
	u := &fakeUsers{refreshResp: &users.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeDocuments{})
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRefreshToken_ExpiredAndInternal(t *testing.T) {
	s := newServer(&fakeUsers{refreshErr: common.ErrRefreshTokenExpired}, &fakeDocuments{})
	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUsers{refreshErr: errors.New("oops")}, &fakeDocuments{})
	_, err = s2.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestUpdateAccount_UsesAuthedUserID(t *testing.T) {
	u := &fakeUsers{}
	s := newServer(u, &fakeDocuments{})

	_, err := s.UpdateAccount(authedCtx("user-1"), &pb.UpdateAccountRequest{
		DisplayName: "New Name", PhotoUrl: "http://new",
	})
	if err != nil {
		t.Fatalf("UpdateAccount error: %v", err)
	}
	if u.updatedID != "user-1" || u.updatedName != "New Name" || u.updatedPhoto != "http://new" {
		t.Fatalf("unexpected update args: %q %q %q", u.updatedID, u.updatedName, u.updatedPhoto)
	}
}

func TestUpdateAccount_MissingAuth(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeDocuments{})
	_, err := s.UpdateAccount(context.Background(), &pb.UpdateAccountRequest{DisplayName: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestGetDocument_FoundAndMissing(t *testing.T) {
	d := &fakeDocuments{getResp: &documents.Document{ID: "p1", Fields: []byte(`{"text":"hi"}`)}}
	s := newServer(&fakeUsers{}, d)

	resp, err := s.GetDocument(authedCtx("u"), &pb.GetDocumentRequest{Collection: "posts", Id: "p1"})
	if err != nil {
		t.Fatalf("GetDocument error: %v", err)
	}
	if !resp.GetFound() || resp.GetDocument().GetId() != "p1" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	d2 := &fakeDocuments{}
	s2 := newServer(&fakeUsers{}, d2)
	resp, err = s2.GetDocument(authedCtx("u"), &pb.GetDocumentRequest{Collection: "posts", Id: "nope"})
	if err != nil {
		t.Fatalf("GetDocument error: %v", err)
	}
	if resp.GetFound() {
		t.Fatalf("expected found=false, got %+v", resp)
	}
}

func TestSetDocument_InvalidAndInternal(t *testing.T) {
	d := &fakeDocuments{setErr: common.ErrorInvalidArgument}
	s := newServer(&fakeUsers{}, d)
	_, err := s.SetDocument(authedCtx("u"), &pb.SetDocumentRequest{Collection: "posts", Id: "p1", Fields: []byte(`[]`)})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}

	d2 := &fakeDocuments{setErr: errors.New("db")}
	s2 := newServer(&fakeUsers{}, d2)
	_, err = s2.SetDocument(authedCtx("u"), &pb.SetDocumentRequest{Collection: "posts", Id: "p1", Fields: []byte(`{}`)})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestAddDocument_OK(t *testing.T) {
	d := &fakeDocuments{addID: "generated-id"}
	s := newServer(&fakeUsers{}, d)
	resp, err := s.AddDocument(authedCtx("u"), &pb.AddDocumentRequest{Collection: "posts", Fields: []byte(`{"text":"hi"}`)})
	if err != nil {
		t.Fatalf("AddDocument error: %v", err)
	}
	if resp.GetId() != "generated-id" {
		t.Fatalf("unexpected id: %q", resp.GetId())
	}
}
