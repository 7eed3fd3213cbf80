// pkg/reporter/debuginfo.go

package reporter

import (
	"context"
	"net/url"
	"strings"

	"github.com/ubports/installer-reporter/pkg/uir_io"
	"golang.org/x/sync/errgroup"
)

// unknownError is the placeholder the installer uses when it has no message.
const unknownError = "Unknown Error"

// DebugInfo assembles the debug bundle and percent-encodes it as a whole.
func (r *Reporter) DebugInfo(rc *uir_io.RuntimeContext, st *State, req DebugRequest) string {
	return EncodeDebugInfo(r.debugText(rc.Ctx, st, req))
}

// debugText composes the bundle. Device link and environment are resolved
// concurrently; their position in the output is fixed.
func (r *Reporter) debugText(ctx context.Context, st *State, req DebugRequest) string {
	if st == nil {
		st = &State{}
	}

	var deviceLink, env string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deviceLink = DeviceLinkMarkdown(st.Props, st.CLI, st.Props.Codename())
		return nil
	})
	g.Go(func() error {
		env = r.environment(gctx)
		return nil
	})
	_ = g.Wait()

	var b strings.Builder
	b.WriteString(deviceLink)
	b.WriteString("\n")
	b.WriteString(env)
	b.WriteString("\n\n")
	if req.Comment != "" {
		b.WriteString(req.Comment)
		b.WriteString("\n\n")
	}
	if req.Error != "" && req.Error != unknownError {
		b.WriteString("**Error:**\n```\n")
		b.WriteString(req.Error)
		b.WriteString("\n```\n\n")
	}
	if history := st.errors(); len(history) > 0 {
		b.WriteString("**Previous Errors:**\n```\n")
		b.WriteString(strings.Join(history, "\n\n"))
		b.WriteString("\n```\n\n")
	}
	return b.String()
}

// EncodeDebugInfo percent-encodes s like encodeURIComponent: spaces become
// %20, never "+".
func EncodeDebugInfo(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DecodeDebugInfo reverses EncodeDebugInfo.
func DecodeDebugInfo(s string) (string, error) {
	return url.PathUnescape(s)
}
