// Package tmdb provides a client for The Movie Database (TMDb) v3 API.
//
// Every endpoint method builds a request URL, sends it through the configured
// Transport and maps the JSON response into a typed value. List endpoints
// return a ResultsList carrying the page and the pagination metadata of the
// response.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := tmdb.NewClient(ctx, "your-api-key", logger,
//		tmdb.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movie, err := client.Movies.Get(ctx, 603, tmdb.Options{
//		Language:         "en",
//		AppendToResponse: []string{"credits", "images"},
//	})
//
// # Transports
//
// The default transport is an *http.Client. WithHTTPClient accepts any
// HTTPDoer. WithContentFetcher plugs in a read-only fetcher; write calls
// (ratings, lists, watch list) then fail with UnsupportedOperation.
//
// # Error Handling
//
// All failures are *Error values discriminated by Kind:
//
//	if errors.Is(err, tmdb.ServiceUnavailable) {
//		// try again later
//	}
//
// A MappingFailed error carries the raw response body in Body.
package tmdb
