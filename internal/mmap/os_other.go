//go:build !unix && !windows

package mmap

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("mmap: not supported on this platform")

func osMap(*os.File, int) ([]byte, func([]byte) error, error) {
	return nil, nil, errUnsupported
}

func osAdvise([]byte, AccessPattern) error {
	return nil
}
