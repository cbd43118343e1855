package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// Tool names. They match the operation names the presentation layer dispatches on.
const (
	toolCreateUser       = "createUser"
	toolGetUser          = "getUser"
	toolSetCurrentUser   = "setCurrentUser"
	toolGetCurrentUser   = "getCurrentUser"
	toolClearCurrentUser = "clearCurrentUser"
	toolAddProduct       = "addProduct"
	toolGetProducts      = "getProducts"
	toolGetUserProducts  = "getUserProducts"
	toolUpdateProduct    = "updateProduct"
	toolDeleteProduct    = "deleteProduct"
	toolSignIn           = "signIn"
	toolSignOut          = "signOut"
)

// NoInput is the input schema for tools without arguments.
type NoInput struct{}

// OKOutput acknowledges a successful write.
type OKOutput struct {
	OK bool `json:"ok"`
}

// CredentialsInput is the input schema for createUser and signIn.
type CredentialsInput struct {
	Email    string `json:"email" jsonschema:"account email, matched exactly"`
	Password string `json:"password" jsonschema:"account password"`
}

// EmailInput is the input schema for tools taking one email.
type EmailInput struct {
	Email string `json:"email" jsonschema:"account email, matched exactly"`
}

// OwnerInput is the input schema for getUserProducts.
type OwnerInput struct {
	OwnerEmail string `json:"ownerEmail" jsonschema:"email of the products' owner"`
}

// UserOutput is an account without its credential.
type UserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// GetUserOutput is the output schema for getUser.
type GetUserOutput struct {
	Found bool        `json:"found"`
	User  *UserOutput `json:"user,omitempty"`
}

// CurrentUserOutput is the output schema for getCurrentUser.
type CurrentUserOutput struct {
	SignedIn bool   `json:"signedIn"`
	Email    string `json:"email,omitempty"`
}

// SignInOutput is the output schema for signIn.
type SignInOutput struct {
	Email string `json:"email"`
}

// ProductInput is the input schema for addProduct and updateProduct.
// ID is ignored by addProduct.
type ProductInput struct {
	ID          int64   `json:"id,omitempty" jsonschema:"product id (updateProduct only)"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	OwnerEmail  string  `json:"ownerEmail" jsonschema:"email of the product's owner"`
}

// DeleteProductInput is the input schema for deleteProduct.
type DeleteProductInput struct {
	ID         int64  `json:"id"`
	OwnerEmail string `json:"ownerEmail" jsonschema:"email of the product's owner"`
}

// AddProductOutput is the output schema for addProduct.
type AddProductOutput struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// AffectedOutput reports how many rows a scoped write touched.
// Zero means the id and owner did not match a product.
type AffectedOutput struct {
	OK       bool  `json:"ok"`
	Affected int64 `json:"affected"`
}

// ProductOutput is a product as returned by list tools.
type ProductOutput struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	OwnerEmail  string  `json:"ownerEmail"`
}

// ProductsOutput is the output schema for getProducts and getUserProducts.
type ProductsOutput struct {
	Products []ProductOutput `json:"products"`
	Count    int             `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	addTool(s.server, toolCreateUser, "Register a new user account. Rejects a malformed email or an empty password", s.handleCreateUser)
	addTool(s.server, toolGetUser, "Look up a user account by exact email", s.handleGetUser)
	addTool(s.server, toolSetCurrentUser, "Make an email the current user without a password check", s.handleSetCurrentUser)
	addTool(s.server, toolGetCurrentUser, "Return the current user's email, if any", s.handleGetCurrentUser)
	addTool(s.server, toolClearCurrentUser, "Clear the current user", s.handleClearCurrentUser)
	addTool(s.server, toolAddProduct, "Add a product for an owner", s.handleAddProduct)
	addTool(s.server, toolGetProducts, "List every product", s.handleGetProducts)
	addTool(s.server, toolGetUserProducts, "List the products of one owner", s.handleGetUserProducts)
	addTool(s.server, toolUpdateProduct, "Update a product matching id and owner", s.handleUpdateProduct)
	addTool(s.server, toolDeleteProduct, "Delete a product matching id and owner", s.handleDeleteProduct)
	addTool(s.server, toolSignIn, "Check credentials and make the account the current user", s.handleSignIn)
	addTool(s.server, toolSignOut, "Sign out the current user", s.handleSignOut)
}

// addTool registers h under name, tagging each call with an id in debug output.
func addTool[In, Out any](server *mcp.Server, name, description string, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		callID := uuid.NewString()
		logger.Debug("mcp %s: call %s", name, callID)
		result, out, err := h(ctx, req, in)
		if err != nil {
			logger.Debug("mcp %s: call %s failed: %v", name, callID, err)
		}
		return result, out, err
	})
}

func (s *Server) handleCreateUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CredentialsInput,
) (*mcp.CallToolResult, OKOutput, error) {
	if err := s.ports.User.Register(ctx, input.Email, input.Password); err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{OK: true}, nil
}

func (s *Server) handleGetUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EmailInput,
) (*mcp.CallToolResult, GetUserOutput, error) {
	user, err := s.ports.User.Get(ctx, input.Email)
	if err != nil {
		return nil, GetUserOutput{}, err
	}
	if user == nil {
		return nil, GetUserOutput{Found: false}, nil
	}
	return nil, GetUserOutput{
		Found: true,
		User:  &UserOutput{ID: user.ID, Email: user.Email},
	}, nil
}

func (s *Server) handleSetCurrentUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EmailInput,
) (*mcp.CallToolResult, OKOutput, error) {
	if err := s.ports.Session.SetCurrent(ctx, input.Email); err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{OK: true}, nil
}

func (s *Server) handleGetCurrentUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, CurrentUserOutput, error) {
	session, err := s.ports.Session.Current(ctx)
	if err != nil {
		return nil, CurrentUserOutput{}, err
	}
	if session == nil {
		return nil, CurrentUserOutput{SignedIn: false}, nil
	}
	return nil, CurrentUserOutput{SignedIn: true, Email: session.Email}, nil
}

func (s *Server) handleClearCurrentUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, OKOutput, error) {
	if err := s.ports.Session.SignOut(ctx); err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{OK: true}, nil
}

func (s *Server) handleAddProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductInput,
) (*mcp.CallToolResult, AddProductOutput, error) {
	id, err := s.ports.Product.Add(ctx, input.toDomain())
	if err != nil {
		return nil, AddProductOutput{}, err
	}
	return nil, AddProductOutput{OK: true, ID: id}, nil
}

func (s *Server) handleGetProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, ProductsOutput, error) {
	products, err := s.ports.Product.List(ctx)
	if err != nil {
		return nil, ProductsOutput{}, err
	}
	return nil, toProductsOutput(products), nil
}

func (s *Server) handleGetUserProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OwnerInput,
) (*mcp.CallToolResult, ProductsOutput, error) {
	products, err := s.ports.Product.ListByOwner(ctx, input.OwnerEmail)
	if err != nil {
		return nil, ProductsOutput{}, err
	}
	return nil, toProductsOutput(products), nil
}

func (s *Server) handleUpdateProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductInput,
) (*mcp.CallToolResult, AffectedOutput, error) {
	affected, err := s.ports.Product.Update(ctx, input.toDomain())
	if err != nil {
		return nil, AffectedOutput{}, err
	}
	return nil, AffectedOutput{OK: true, Affected: affected}, nil
}

func (s *Server) handleDeleteProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteProductInput,
) (*mcp.CallToolResult, AffectedOutput, error) {
	affected, err := s.ports.Product.Delete(ctx, input.ID, input.OwnerEmail)
	if err != nil {
		return nil, AffectedOutput{}, err
	}
	return nil, AffectedOutput{OK: true, Affected: affected}, nil
}

func (s *Server) handleSignIn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CredentialsInput,
) (*mcp.CallToolResult, SignInOutput, error) {
	user, err := s.ports.Session.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, SignInOutput{}, err
	}
	return nil, SignInOutput{Email: user.Email}, nil
}

func (s *Server) handleSignOut(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, OKOutput, error) {
	if err := s.ports.Session.SignOut(ctx); err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{OK: true}, nil
}

func (in ProductInput) toDomain() domain.Product {
	return domain.Product{
		ID:          in.ID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		OwnerEmail:  in.OwnerEmail,
	}
}

func toProductsOutput(products []domain.Product) ProductsOutput {
	out := ProductsOutput{
		Products: make([]ProductOutput, len(products)),
		Count:    len(products),
	}
	for i, p := range products {
		out.Products[i] = ProductOutput{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			OwnerEmail:  p.OwnerEmail,
		}
	}
	return out
}
