package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shopdesk/internal/adapters/driven/crypto/argon2"
	"github.com/custodia-labs/shopdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/services"
)

type testPorts struct {
	*Ports
	users    *services.UserService
	sessions *services.SessionService
	products *services.ProductService
}

func newTestPorts() *testPorts {
	hasher := argon2.NewHasher(argon2.Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32})
	users := services.NewUserService(memory.NewUserStore(), hasher)
	sessions := services.NewSessionService(memory.NewSessionStore(), users)
	products := services.NewProductService(memory.NewProductStore())
	return &testPorts{
		Ports:    &Ports{User: users, Session: sessions, Product: products},
		users:    users,
		sessions: sessions,
		products: products,
	}
}

func newTestApp(t *testing.T, tp *testPorts) *App {
	t.Helper()
	app, err := NewApp(tp.Ports)
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app
}

// send delivers msg to the app and returns the resulting command.
func send(app *App, msg tea.Msg) tea.Cmd {
	_, cmd := app.Update(msg)
	return cmd
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts().Ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	require.ErrorIs(t, err, ErrMissingUserService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(newTestPorts().Ports)
	require.NoError(t, err)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	assert.NotNil(t, app.Init())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts().Ports)
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Sign in")
}

func TestApp_ResolveSession(t *testing.T) {
	t.Run("nobody signed in stays on sign in", func(t *testing.T) {
		app := newTestApp(t, newTestPorts())

		send(app, app.resolveSession()())

		assert.Equal(t, messages.ViewSignIn, app.CurrentView())
		assert.Empty(t, app.User())
	})

	t.Run("existing session opens products", func(t *testing.T) {
		tp := newTestPorts()
		require.NoError(t, tp.sessions.SetCurrent(context.Background(), "a@x.com"))
		app := newTestApp(t, tp)

		cmd := send(app, app.resolveSession()())

		assert.Equal(t, messages.ViewProducts, app.CurrentView())
		assert.Equal(t, "a@x.com", app.User())
		assert.NotNil(t, cmd)
	})
}

func TestApp_SignInOpensProducts(t *testing.T) {
	tp := newTestPorts()
	ctx := context.Background()
	require.NoError(t, tp.users.Register(ctx, "a@x.com", "pw"))
	_, err := tp.products.Add(ctx, domain.Product{
		Name: "Lamp", Price: 5, Description: "Desk lamp", Category: "Home", OwnerEmail: "a@x.com",
	})
	require.NoError(t, err)
	app := newTestApp(t, tp)

	loadCmd := send(app, messages.SignedIn{Email: "a@x.com"})
	require.NotNil(t, loadCmd)
	assert.Equal(t, messages.ViewProducts, app.CurrentView())

	send(app, loadCmd())
	assert.Contains(t, app.View(), "Lamp")
}

func TestApp_SignInFailureStaysOnSignIn(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	send(app, messages.SignedIn{Email: "a@x.com", Err: domain.ErrInvalidCredentials})

	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
	assert.Contains(t, app.View(), "invalid email or password")
}

func TestApp_SignUpReturnsToSignIn(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	send(app, messages.ViewChanged{View: messages.ViewSignUp})
	assert.Equal(t, messages.ViewSignUp, app.CurrentView())

	send(app, messages.SignedUp{Email: "a@x.com"})

	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
	assert.Contains(t, app.View(), "Account created for a@x.com")
}

func TestApp_SignUpFailureStaysOnSignUp(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	send(app, messages.ViewChanged{View: messages.ViewSignUp})

	send(app, messages.SignedUp{Email: "a@x.com", Err: domain.ErrDuplicateEmail})

	assert.Equal(t, messages.ViewSignUp, app.CurrentView())
	assert.Contains(t, app.View(), "email already registered")
}

func TestApp_ProductFormFlow(t *testing.T) {
	tp := newTestPorts()
	app := newTestApp(t, tp)
	send(app, messages.SignedIn{Email: "a@x.com"})

	send(app, messages.EditProduct{})
	assert.Equal(t, messages.ViewProductForm, app.CurrentView())
	assert.Contains(t, app.View(), "Add product")

	send(app, messages.ProductSaved{ID: 4, Created: true, Affected: 1})
	assert.Equal(t, messages.ViewProducts, app.CurrentView())
	assert.Contains(t, app.View(), "Added product 4")

	send(app, messages.EditProduct{Product: &domain.Product{ID: 4, Name: "Lamp"}})
	assert.Contains(t, app.View(), "Edit product 4")

	send(app, messages.ProductSaved{ID: 4, Err: domain.ErrStoreUnavailable})
	assert.Equal(t, messages.ViewProductForm, app.CurrentView())
	assert.Contains(t, app.View(), "store unavailable")

	send(app, messages.ViewChanged{View: messages.ViewProducts})
	assert.Equal(t, messages.ViewProducts, app.CurrentView())
}

func TestApp_FormRequiresUser(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	send(app, messages.EditProduct{})

	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
}

func TestApp_SignOut(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	send(app, messages.SignedIn{Email: "a@x.com"})

	send(app, messages.SignedOut{})

	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
	assert.Empty(t, app.User())
	assert.Contains(t, app.View(), "Signed out.")

	send(app, messages.ViewChanged{View: messages.ViewProducts})
	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
}

func TestApp_EndToEndKeys(t *testing.T) {
	tp := newTestPorts()
	ctx := context.Background()
	require.NoError(t, tp.users.Register(ctx, "a@x.com", "pw"))
	app := newTestApp(t, tp)
	app.Init()

	for _, r := range "a@x.com" {
		send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	send(app, tea.KeyMsg{Type: tea.KeyTab})
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pw")})

	signIn := send(app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, signIn)
	load := send(app, signIn())
	require.NotNil(t, load)
	send(app, load())

	assert.Equal(t, messages.ViewProducts, app.CurrentView())

	session, err := tp.sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "a@x.com", session.Email)

	logout := send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	require.NotNil(t, logout)
	send(app, logout())

	assert.Equal(t, messages.ViewSignIn, app.CurrentView())
	session, err = tp.sessions.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	cmd := send(app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	cmd := send(app, messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
