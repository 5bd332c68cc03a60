// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema YAML decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaName is returned when a schema declares no name.
	ErrSchemaName = errors.New("schema must declare a name")
	// ErrDuplicateClass is returned when two classes share one name.
	ErrDuplicateClass = errors.New("duplicate class")
	// ErrUnresolvedReference is returned when schema cross-references do not resolve.
	ErrUnresolvedReference = errors.New("unresolved schema reference")
	// ErrUnknownClass is returned when a selection scope names a class absent from the model.
	ErrUnknownClass = errors.New("unknown class")
	// ErrRenderUnavailable is returned when the rendering service cannot be reached or returns a failure status.
	ErrRenderUnavailable = errors.New("render service unavailable")
	// ErrRenderRejected is returned when the rendering service rejects the diagram input.
	ErrRenderRejected = errors.New("render service rejected diagram")
	// ErrEncodeDiagram is returned when diagram text compression fails.
	ErrEncodeDiagram = errors.New("encode diagram")
	// ErrWriteImageFile is returned when rendered image persistence fails.
	ErrWriteImageFile = errors.New("write image file")
)
