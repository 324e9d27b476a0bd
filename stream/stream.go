package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
)

// Generic channel plumbing for the CLI pipelines.
// Pattern after https://betterprogramming.pub/writing-a-stream-api-in-go-afbc3c4350e2

// Slice sends the elements of a slice on a channel.
func Slice[T any](ctx context.Context, in []T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, element := range in {
			select {
			case <-ctx.Done():
				return
			case out <- element:
			}
		}
	}()
	return out
}

// NDJSONMaxLineSize bounds a single input line.
// A GeoJSON point feature with generous properties is well under this.
const NDJSONMaxLineSize = 1024 * 1024

// NDJSON decodes newline-delimited JSON from a reader.
// Undecodable lines are skipped, not fatal. Decoding is per line,
// not a shared json.Decoder: decoder syntax errors are sticky, and a
// single bad line must not wedge the stream or eat the lines after it.
func NDJSON[T any](ctx context.Context, in io.Reader) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), NDJSONMaxLineSize)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var element T
			if err := json.Unmarshal(line, &element); err != nil {
				slog.Debug("Skipping undecodable line", "error", err)
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- element:
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("Line scan failed", "error", err)
		}
	}()
	return out
}

// Filter passes only elements satisfying the predicate.
func Filter[T any](ctx context.Context, predicate func(T) bool, in <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for element := range in {
			if predicate(element) {
				select {
				case <-ctx.Done():
					return
				case out <- element:
				}
			}
		}
	}()
	return out
}

// Transform maps each element through the transformer.
func Transform[I any, O any](ctx context.Context, transformer func(I) O, in <-chan I) <-chan O {
	out := make(chan O)
	go func() {
		defer close(out)
		for element := range in {
			select {
			case <-ctx.Done():
				return
			case out <- transformer(element):
			}
		}
	}()
	return out
}

// Collect drains a channel into a slice.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	out := []T{}
	for element := range in {
		select {
		case <-ctx.Done():
			return out
		default:
			out = append(out, element)
		}
	}
	return out
}
