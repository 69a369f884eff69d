package mnemonic

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
)

// NewEntropy reads bits of entropy from crypto/rand.
func NewEntropy(ctx context.Context, bits int) ([]byte, error) {
	return ReadEntropy(ctx, rand.Reader, bits)
}

// ReadEntropy reads bits of entropy from r. It returns ctx.Err() as soon as
// ctx is done, even while a read is still blocked. A blocked read is
// abandoned, not interrupted: its goroutine exits once r returns and the
// bytes it read are discarded.
func ReadEntropy(ctx context.Context, r io.Reader, bits int) ([]byte, error) {
	if err := ValidateEntropyBits(bits); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		buf []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		buf := make([]byte, bits/8)
		_, err := io.ReadFull(r, buf)
		done <- result{buf: buf, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("read entropy: %w", res.err)
		}
		return res.buf, nil
	}
}
