// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/portfolio-server/models"
	"google.golang.org/grpc"
)

// ContentServiceName is the fully qualified name of the content service.
const ContentServiceName = "portfolio.v1.Content"

// ContentServer is the server API of the content service.
type ContentServer interface {
	ListPosts(context.Context, *ListRequest) (*ListPostsResponse, error)
	GetPost(context.Context, *GetRequest) (*models.Post, error)
	ListProjects(context.Context, *ListRequest) (*ListProjectsResponse, error)
	GetProject(context.Context, *GetRequest) (*models.Project, error)
	GetResume(context.Context, *ListRequest) (*models.Resume, error)
}

// ContentServiceDesc describes the content service for grpc.Server.
var ContentServiceDesc = grpc.ServiceDesc{
	ServiceName: ContentServiceName,
	HandlerType: (*ContentServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPosts", Handler: unaryHandler("ListPosts", ContentServer.ListPosts)},
		{MethodName: "GetPost", Handler: unaryHandler("GetPost", ContentServer.GetPost)},
		{MethodName: "ListProjects", Handler: unaryHandler("ListProjects", ContentServer.ListProjects)},
		{MethodName: "GetProject", Handler: unaryHandler("GetProject", ContentServer.GetProject)},
		{MethodName: "GetResume", Handler: unaryHandler("GetResume", ContentServer.GetResume)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portfolio/v1/content",
}

// RegisterContentServer registers srv on s.
func RegisterContentServer(s grpc.ServiceRegistrar, srv ContentServer) {
	s.RegisterService(&ContentServiceDesc, srv)
}

// FullMethodName returns the invocation path of a content service method.
func FullMethodName(method string) string {
	return "/" + ContentServiceName + "/" + method
}

// unaryHandler adapts a typed ContentServer method to a grpc method handler.
func unaryHandler[Req, Resp any](method string, call func(ContentServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := FullMethodName(method)

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ContentServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ContentServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
