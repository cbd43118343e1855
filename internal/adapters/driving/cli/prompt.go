package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// prompter reads answers from the command's input.
// One prompter must be used per command run so buffered input is not lost.
type prompter struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{cmd: cmd, reader: bufio.NewReader(cmd.InOrStdin())}
}

// line prints label and returns the trimmed answer.
func (p *prompter) line(label string) (string, error) {
	p.cmd.Print(label)
	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// password reads without echo when input is a terminal.
func (p *prompter) password(label string) (string, error) {
	if f, ok := p.cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.cmd.Print(label)
		secret, err := term.ReadPassword(int(f.Fd()))
		p.cmd.Println()
		if err == nil {
			return string(secret), nil
		}
	}
	return p.line(label)
}

// confirm asks a yes/no question. Anything but y or yes is no.
func (p *prompter) confirm(question string) (bool, error) {
	answer, err := p.line(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// resolveOwner returns the owner flag value, falling back to the signed-in user.
func resolveOwner(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if sessionService == nil {
		return "", errors.New("session service not configured")
	}
	session, err := sessionService.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("reading current user: %w", err)
	}
	if session == nil || session.Email == "" {
		return "", fmt.Errorf("%w: run 'shopdesk login' or pass --owner", domain.ErrNotSignedIn)
	}
	return session.Email, nil
}
