package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for shopdesk resources.
	uriScheme = "shopdesk://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "session",
		Name:        "session",
		Description: "The currently signed-in user",
		MIMEType:    "application/json",
	}, s.handleSessionResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "products",
		Name:        "products",
		Description: "Products owned by the currently signed-in user",
		MIMEType:    "application/json",
	}, s.handleProductsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "products/{productId}",
		Name:        "product",
		Description: "One product owned by the currently signed-in user",
		MIMEType:    "application/json",
	}, s.handleProductResource)
}

// handleSessionResource returns the current session, or {"signedIn": false}.
func (s *Server) handleSessionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	session, err := s.ports.Session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	out := CurrentUserOutput{}
	if session != nil {
		out = CurrentUserOutput{SignedIn: true, Email: session.Email}
	}
	return jsonResult(req.Params.URI, out)
}

// handleProductsResource lists the current user's products.
// Without a session the list is empty.
func (s *Server) handleProductsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	session, err := s.ports.Session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	if session == nil {
		return jsonResult(req.Params.URI, toProductsOutput(nil))
	}

	products, err := s.ports.Product.ListByOwner(ctx, session.Email)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return jsonResult(req.Params.URI, toProductsOutput(products))
}

// handleProductResource returns one of the current user's products.
func (s *Server) handleProductResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractProductID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	session, err := s.ports.Session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	if session == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, err := s.ports.Product.Get(ctx, id, session.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return jsonResult(req.Params.URI, ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		OwnerEmail:  p.OwnerEmail,
	})
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProductID extracts the product ID from a URI like shopdesk://products/{productId}.
func extractProductID(uri string) (int64, bool) {
	const prefix = uriScheme + "products/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
