package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
	"github.com/ib-77/outcome/pkg/outcome/tiny"
)

type fetchError struct {
	url    string
	status int
}

func (e *fetchError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.url, e.status)
}

// TestURLProcessing runs URLs through validation, a mocked fetch and a
// length calculation, then reduces every outcome to a report line.
func TestURLProcessing(t *testing.T) {
	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.micros---oft.com",
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(context.Background(), urls)
	require.Len(t, results, len(urls))

	invalid := 0
	for _, res := range results {
		if res == "invalid" {
			invalid++
		}
	}
	assert.Equal(t, 2, invalid)
	assert.Equal(t, fmt.Sprintf("title length: %d", len("Mock Page Title for https://www.example.com")), results[0])
	assert.Equal(t, "unavailable", results[2])
}

func processRequest(ctx context.Context, urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, url := range urls {
		title := solo.Try(ctx, solo.Validate(ctx, url, validateURLTest), mockFetchTitle)
		length := solo.Switch(ctx, title, calculateTitleLength)

		out = append(out, solo.Finally(ctx, length,
			func(_ context.Context, r int) string { return fmt.Sprintf("title length: %d", r) },
			func(_ context.Context, err error) string {
				var fe *fetchError
				if errors.As(err, &fe) {
					return "unavailable"
				}
				return "invalid"
			}))
	}
	return out
}

func mockFetchTitle(ctx context.Context, url string) (string, error) {
	if strings.Contains(url, "---") {
		return "", &fetchError{url: url, status: 502}
	}
	return "Mock Page Title for " + url, nil
}

func validateURLTest(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

func calculateTitleLength(_ context.Context, title string) outcome.Outcome[int, error] {
	return solo.Succeed(len(title))
}

// TestTypedFailurePipeline keeps a domain error type through the whole
// pipeline and only switches to error at the boundary.
func TestTypedFailurePipeline(t *testing.T) {
	lookup := func(id int) outcome.Outcome[string, *fetchError] {
		if id == 0 {
			return outcome.Err[string](&fetchError{url: "/users/0", status: 404})
		}
		return outcome.Ok[string, *fetchError](fmt.Sprintf("user-%d", id))
	}

	nested := outcome.Map(outcome.Ok[int, *fetchError](7), lookup)
	user := outcome.Flatten(nested)
	assert.Equal(t, outcome.Ok[string, *fetchError]("user-7"), user)

	missing := outcome.FlatMap(outcome.Ok[int, *fetchError](0), lookup)
	fe, failed := missing.FailureValue()
	require.True(t, failed)
	assert.Equal(t, 404, fe.status)

	asError := outcome.MapError(missing, func(e *fetchError) error {
		return fmt.Errorf("load user: %w", e)
	})
	recovered := outcome.Or(missing, outcome.Ok[string, error]("guest"))
	assert.Equal(t, "guest", recovered.MustValue())
	assert.PanicsWithError(t, "load user: fetch /users/0: status 404", func() { asError.MustValue() })
}

// TestChainPipeline mirrors the URL flow with the fluent chain.
func TestChainPipeline(t *testing.T) {
	ctx := context.Background()

	ok := tiny.FromValue(ctx, "https://www.example.com").
		Then(func(ctx context.Context, url string) outcome.Outcome[string, error] {
			return solo.Validate(ctx, url, validateURLTest)
		}).
		ThenTry(mockFetchTitle).
		Map(func(_ context.Context, title string) string { return strings.ToUpper(title) })

	assert.Equal(t, "MOCK PAGE TITLE FOR HTTPS://WWW.EXAMPLE.COM", ok.Result().MustValue())

	bad := tiny.FromValue(ctx, "https://a---b.com").ThenTry(mockFetchTitle)
	fallback := tiny.FromValue(ctx, "cached title")
	assert.Equal(t, "cached title", bad.Or(fallback).Result().MustValue())
}
