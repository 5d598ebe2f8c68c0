// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds process-wide settings for the casnum kernel:
// viewer graphics enablement, queue sizing and drop policy, the algebra
// package's tie-break precision, and the seed state for GetPrime's PRNG.
// Config is a struct of unexported fields behind nil-safe getters, set once
// at process start and read everywhere; a nil *Config behaves as all
// defaults.
package config

import (
	"time"

	"casnum/algebra"
	"casnum/viewer"
)

// Logger is the minimal sink config.Logf writes to when one is configured.
// Callers wire this to whatever logging backend they already use; the
// kernel never depends on a concrete logging library.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Config holds the configuration of a casnum process. The zero value holds
// defaults for everything except EnableGraphics, which stays false until a
// Sink is actually wanted; the LCG seeds from the wall clock on first use
// unless RandomSeed was called (see RandState).
type Config struct {
	enableGraphics bool
	queueCapacity  int
	dropPolicy     viewer.DropPolicy
	tiePrecision   uint
	logger         Logger

	randState  int64
	randSeeded bool

	prompt string
}

// current is the process-wide configuration set once via Set. A nil
// current is valid throughout this package's getters and behaves as all
// defaults.
var current *Config

// Set installs c as the process-wide configuration.
func Set(c *Config) { current = c }

// Current returns the process-wide configuration (possibly nil).
func Current() *Config { return current }

func (c *Config) EnableGraphics() bool {
	if c == nil {
		return false
	}
	return c.enableGraphics
}

func (c *Config) SetEnableGraphics(v bool) { c.enableGraphics = v }

// QueueCapacity returns the configured viewer.Queue capacity, defaulting to
// 256 commands when unset.
func (c *Config) QueueCapacity() int {
	if c == nil || c.queueCapacity == 0 {
		return 256
	}
	return c.queueCapacity
}

func (c *Config) SetQueueCapacity(n int) { c.queueCapacity = n }

// DropPolicy returns the configured viewer.Queue overflow policy, defaulting
// to DropOldest (favor showing the most recent construction steps).
func (c *Config) DropPolicy() viewer.DropPolicy {
	if c == nil {
		return viewer.DropOldest
	}
	return c.dropPolicy
}

func (c *Config) SetDropPolicy(p viewer.DropPolicy) { c.dropPolicy = p }

// TiePrecision returns the bit precision used to discriminate branch
// selection in circle/circle and circle/line intersections, defaulting to
// algebra.TiePrecision.
func (c *Config) TiePrecision() uint {
	if c == nil || c.tiePrecision == 0 {
		return algebra.TiePrecision
	}
	return c.tiePrecision
}

// SetTiePrecision sets the tie-break precision and pushes it into the
// algebra package's own Precision variable, the one piece of shared mutable
// state the kernel's branch-selection discriminators actually read.
func (c *Config) SetTiePrecision(bits uint) {
	c.tiePrecision = bits
	algebra.Precision = bits
}

func (c *Config) Logger() Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

func (c *Config) SetLogger(l Logger) { c.logger = l }

// Logf calls the current configuration's logger, if any. A nil or
// unconfigured logger makes this a no-op.
func Logf(format string, args ...interface{}) {
	if current == nil || current.logger == nil {
		return
	}
	current.logger.Printf(format, args...)
}

// RandomSeed sets the LCG seed GetPrime and GetRandIntNBits advance from.
// The generator is a linear congruential generator over CasNum arithmetic
// itself (a=1664525, c=1013904223; m=2^32 for GetPrime, m=2^nbits for
// GetRandIntNBits) rather than math/rand, so that
// even the random draws are geometric constructions; pinning the seed makes
// them reproducible.
func (c *Config) RandomSeed(seed int64) {
	c.randState = seed
	c.randSeeded = true
}

// RandState returns the current LCG state, seeding it from the wall clock
// (in centiseconds) if RandomSeed was never called.
func (c *Config) RandState() int64 {
	if c == nil {
		return 0
	}
	if !c.randSeeded {
		c.randState = time.Now().UnixMilli() / 10
		c.randSeeded = true
	}
	return c.randState
}

// SetRandState advances the LCG state, called by GetPrime/GetRandIntNBits
// after each draw so successive calls continue the same sequence.
func (c *Config) SetRandState(v int64) {
	c.randState = v
	c.randSeeded = true
}

// Prompt returns the REPL prompt string (empty by default).
func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

// SetPrompt sets the REPL prompt string.
func (c *Config) SetPrompt(p string) { c.prompt = p }
