package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/snapfeed/snapfeed/internal/common"
	pb "github.com/snapfeed/snapfeed/internal/proto"
	"github.com/snapfeed/snapfeed/internal/server/documents"
	"github.com/snapfeed/snapfeed/internal/server/users"
)

func accountToPb(u *users.User) *pb.Account {
	return &pb.Account{
		Id:          u.ID,
		Username:    u.UserName,
		DisplayName: u.DisplayName,
		PhotoUrl:    u.PhotoURL,
		Email:       u.Email,
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.users.Register(ctx, req.Username, req.Password, req.DisplayName, req.Email)

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "username is taken")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterResponse{UserId: user.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user, tokens, err := s.users.Login(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Account:      accountToPb(user),
	}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.Refresh(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "refresh token expired")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) UpdateAccount(ctx context.Context, req *pb.UpdateAccountRequest) (*pb.UpdateAccountResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	err := s.users.UpdateAccount(ctx, userID, req.DisplayName, req.PhotoUrl)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "account not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UpdateAccountResponse{}, nil

}

func (s *GRPCServer) GetDocument(ctx context.Context, req *pb.GetDocumentRequest) (*pb.GetDocumentResponse, error) {

	doc, err := s.documents.Get(ctx, req.Collection, req.Id)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	if doc == nil {
		return &pb.GetDocumentResponse{Found: false}, nil
	}

	return &pb.GetDocumentResponse{
		Found:    true,
		Document: &pb.Document{Id: doc.ID, Fields: doc.Fields},
	}, nil

}

func (s *GRPCServer) SetDocument(ctx context.Context, req *pb.SetDocumentRequest) (*pb.SetDocumentResponse, error) {

	err := s.documents.Set(ctx, req.Collection, req.Id, req.Fields, req.Merge)

	if err != nil {
		if errors.Is(err, common.ErrorInvalidArgument) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SetDocumentResponse{}, nil

}

func (s *GRPCServer) AddDocument(ctx context.Context, req *pb.AddDocumentRequest) (*pb.AddDocumentResponse, error) {

	id, err := s.documents.Add(ctx, req.Collection, req.Fields)

	if err != nil {
		if errors.Is(err, common.ErrorInvalidArgument) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AddDocumentResponse{Id: id}, nil

}

func snapshotToPb(docs []*documents.Document) *pb.WatchResponse {
	resp := &pb.WatchResponse{Documents: make([]*pb.Document, 0, len(docs))}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, &pb.Document{Id: d.ID, Fields: d.Fields})
	}
	return resp
}
