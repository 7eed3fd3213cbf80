// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReadLine prompts the user with a label on out and returns a trimmed line.
// A final line without newline is accepted; an empty stream returns io.EOF.
func ReadLine(ctx context.Context, reader *bufio.Reader, out io.Writer, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	_, _ = fmt.Fprint(out, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && text != "") {
		logger.Debug("Failed to read user input", zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(text), nil
}
