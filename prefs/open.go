/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prefs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/s3cache"
)

const s3Prefix = "prefs"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds a Store from a backend description:
//
//	memory          in-process only (default when backend is empty)
//	sqlite:<path>   local sqlite database
//	s3              the default prefs bucket
//	s3:<bucket>     an S3 bucket; objects are gzipped
//
// The returned Closer releases the backend.
func OpenStore(ctx context.Context, backend string) (*Store, io.Closer, error) {
	kind, arg, _ := strings.Cut(strings.TrimSpace(backend), ":")
	switch strings.ToLower(kind) {
	case "", "memory", "mem":
		return NewStore(httpcache.NewMemoryCache()), nopCloser{}, nil
	case "sqlite":
		if arg == "" {
			return nil, nil, fmt.Errorf("prefs.open: sqlite store needs a path, e.g. sqlite:drawtd.db")
		}
		c, err := OpenSQLiteCache(ctx, arg)
		if err != nil {
			return nil, nil, err
		}
		return NewStore(c), c, nil
	case "s3":
		if arg == "" {
			arg = internal.PrefsBucket
		}
		c := s3cache.New(ctx, arg, s3Prefix, true, true)
		if err := c.Init(); err != nil {
			return nil, nil, fmt.Errorf("prefs.open: %w", err)
		}
		return NewStore(c), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("prefs.open: unknown store %q; want memory, sqlite:<path> or s3:<bucket>",
		backend)
}
