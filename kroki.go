// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultRenderServer is the public Kroki endpoint.
	DefaultRenderServer = "https://kroki.io"
	// defaultRenderTimeout bounds one rendering service call.
	defaultRenderTimeout = 30 * time.Second
	// diagramKind selects the PlantUML renderer on the service.
	diagramKind = "plantuml"
)

// ImageFormat selects the rendered image format.
type ImageFormat string

const (
	// FormatSVG renders scalable vector graphics output.
	FormatSVG ImageFormat = "svg"
	// FormatPNG renders raster output.
	FormatPNG ImageFormat = "png"
)

// Renderer turns diagram notation text into image bytes. Service
// unavailability is reported as ErrRenderUnavailable; a rejected diagram
// as ErrRenderRejected, so callers can tell the two apart.
type Renderer interface {
	Render(ctx context.Context, diagram string) ([]byte, error)
}

// RenderOptions configures a Kroki-backed renderer.
type RenderOptions struct {
	// Server is the rendering service base URL; defaults to DefaultRenderServer.
	Server string
	// Format is the requested image format; defaults to FormatSVG.
	Format ImageFormat
	// Timeout bounds one service call; defaults to defaultRenderTimeout.
	Timeout time.Duration
	// Client overrides the HTTP client, for tests.
	Client *http.Client
}

// KrokiRenderer renders diagrams through a Kroki service instance.
type KrokiRenderer struct {
	server string
	format ImageFormat
	client *http.Client
}

// NewKrokiRenderer builds a renderer with normalized options.
func NewKrokiRenderer(opt RenderOptions) *KrokiRenderer {
	server := strings.TrimRight(strings.TrimSpace(opt.Server), "/")
	if server == "" {
		server = DefaultRenderServer
	}

	format := opt.Format
	if format == "" {
		format = FormatSVG
	}

	client := opt.Client
	if client == nil {
		timeout := opt.Timeout
		if timeout <= 0 {
			timeout = defaultRenderTimeout
		}

		client = &http.Client{Timeout: timeout}
	}

	return &KrokiRenderer{server: server, format: format, client: client}
}

// Format returns the configured image format.
func (renderer *KrokiRenderer) Format() ImageFormat {
	return renderer.format
}

// Render sends diagram text to the service and returns image bytes.
// The diagram travels deflate-compressed and base64url-encoded in the
// request path, the encoding Kroki expects for GET requests.
func (renderer *KrokiRenderer) Render(ctx context.Context, diagram string) ([]byte, error) {
	encoded, err := encodeDiagram(diagram)
	if err != nil {
		return nil, err
	}

	url := renderer.server + "/" + diagramKind + "/" + string(renderer.format) + "/" + encoded
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderUnavailable, err)
	}

	response, err := renderer.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderUnavailable, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrRenderUnavailable, err)
	}

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		return body, nil
	case response.StatusCode >= 400 && response.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRenderRejected, response.StatusCode, summarizeBody(body))
	default:
		return nil, fmt.Errorf("%w: status %d", ErrRenderUnavailable, response.StatusCode)
	}
}

// WriteImage renders the generated diagram for a model and persists it
// under directory as <schema name>.<format>. The file is written only
// after the complete image body arrived, so failures never leave a
// partial file behind. Returns the written file path.
func WriteImage(ctx context.Context, renderer Renderer, model *Model, opt Options, directory string, format ImageFormat) (string, error) {
	diagram, err := Generate(model, opt)
	if err != nil {
		return "", err
	}

	image, err := renderer.Render(ctx, diagram)
	if err != nil {
		return "", err
	}

	if format == "" {
		format = FormatSVG
	}

	name := strings.TrimSpace(model.Schema().Name)
	if name == "" {
		return "", ErrSchemaName
	}

	path := filepath.Join(directory, name+"."+string(format))
	if err := os.WriteFile(path, image, 0o600); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrWriteImageFile, path, err)
	}

	return path, nil
}

// encodeDiagram deflate-compresses and base64url-encodes diagram text.
func encodeDiagram(diagram string) (string, error) {
	var compressed bytes.Buffer
	writer, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeDiagram, err)
	}

	if _, err := writer.Write([]byte(diagram)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeDiagram, err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeDiagram, err)
	}

	return base64.URLEncoding.EncodeToString(compressed.Bytes()), nil
}

// summarizeBody shortens service error payloads for error messages.
func summarizeBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200] + "..."
	}

	if text == "" {
		return "(empty body)"
	}

	return text
}
