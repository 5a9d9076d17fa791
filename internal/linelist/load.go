package linelist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()

		return nil, fmt.Errorf("unexpected status %q", resp.Status)
	}

	return resp.Body, nil
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if isURL(source) {
		return openURL(ctx, source)
	}

	return os.Open(source)
}

const (
	initialLineSize = 64 * 1024
	maxLineSize     = 64 * 1024 * 1024
)

// Load reads every line of source, a file path or an http(s) URL, into a new list.
// The source is closed before Load returns.
func Load(ctx context.Context, source string) (*List, error) {
	in, err := open(ctx, source)
	if err != nil {
		return nil, NewErrIO(source, err)
	}

	return readAndClose(source, in)
}

// readAndClose reads in and closes it. A close failure is reported only when
// reading succeeded.
func readAndClose(source string, in io.ReadCloser) (list *List, err error) {
	defer func() {
		closeErr := in.Close()
		if err == nil && closeErr != nil {
			list, err = nil, NewErrIO(source, fmt.Errorf("close: %w", closeErr))
		}
	}()

	return Read(source, in)
}

// Read appends the lines of in to a new list, with line terminators stripped.
// Lines may be up to 64 MiB long.
//
// Blank and whitespace-only lines are skipped wherever they appear, so they
// are neither stored nor counted by Len. A source without any other line is
// reported as ErrFormat.
func Read(source string, in io.Reader) (*List, error) {
	list := New(source)
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, initialLineSize), maxLineSize)

	for scan.Scan() {
		text := strings.TrimSuffix(scan.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		list.Append(text)
	}

	if err := scan.Err(); err != nil {
		return nil, NewErrIO(source, err)
	}

	if list.Len() == 0 {
		return nil, NewErrFormat(source, 0, "no lines")
	}

	return list, nil
}
