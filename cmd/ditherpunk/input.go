package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// openInput opens input as a file, or failing that fetches it as a URL. An
// empty input reads stdin.
func openInput(input string) (io.Reader, func(), error) {
	if input == "" {
		return os.Stdin, func() {}, nil
	}
	if file, err := os.Open(input); err == nil {
		return file, func() { file.Close() }, nil
	}
	resp, err := http.Get(input)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", input, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, fmt.Errorf("fetch %s: %s", input, resp.Status)
	}
	return resp.Body, func() { resp.Body.Close() }, nil
}
