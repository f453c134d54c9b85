// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is the logging helper the ldb/lmt/lmu/lsd façades build once
// and pass down through their Options, defaulting to error-level-only
// output when the caller doesn't supply a logger.
package log

import "go.uber.org/zap"

// Helper wraps a *zap.SugaredLogger so call sites can log without checking
// for a nil logger.
type Helper struct {
	s *zap.SugaredLogger
}

// NewHelper builds a Helper around logger, defaulting to a quiet
// error-level-only production logger when logger is nil.
func NewHelper(logger *zap.Logger) *Helper {
	if logger == nil {
		logger, _ = zap.NewProduction(zap.IncreaseLevel(zap.ErrorLevel))
	}
	return &Helper{s: logger.Sugar()}
}

// Warnf logs a formatted warning.
func (h *Helper) Warnf(template string, args ...interface{}) {
	if h == nil || h.s == nil {
		return
	}
	h.s.Warnf(template, args...)
}

// Errorf logs a formatted error.
func (h *Helper) Errorf(template string, args ...interface{}) {
	if h == nil || h.s == nil {
		return
	}
	h.s.Errorf(template, args...)
}
