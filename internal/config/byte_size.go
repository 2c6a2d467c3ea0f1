// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ByteSize is a size in bytes that can be written in human form ("10MB",
// "5 MiB", "512KB") in environment variables, flags and JSON.
//
// Sizes without a binary suffix follow the go-humanize convention, where
// "MB" means 10^6 bytes. Use "MiB" for 2^20.
type ByteSize int64

// MiB is one mebibyte.
const MiB ByteSize = 1 << 20

// Int64 returns the size as a plain byte count.
func (b ByteSize) Int64() int64 {
	return int64(b)
}

// String renders the size in IEC units, e.g. "10 MiB".
func (b ByteSize) String() string {
	if b < 0 {
		return fmt.Sprintf("%d B", int64(b))
	}
	return humanize.IBytes(uint64(b))
}

// Set implements flag.Value.
func (b *ByteSize) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// UnmarshalText implements encoding.TextUnmarshaler; caarlos0/env uses it for
// environment variables.
func (b *ByteSize) UnmarshalText(text []byte) error {
	n, err := humanize.ParseBytes(string(text))
	if err != nil {
		return fmt.Errorf("invalid byte size %q: %w", string(text), err)
	}
	*b = ByteSize(n)
	return nil
}

// UnmarshalJSON accepts either a number of bytes or a human-readable string.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*b = ByteSize(value)
		return nil
	case string:
		return b.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid byte size %s", string(data))
	}
}
