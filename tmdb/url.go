package tmdb

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names understood by the API.
const (
	paramAPIKey               = "api_key"
	paramSession              = "session_id"
	paramToken                = "request_token"
	paramLanguage             = "language"
	paramPage                 = "page"
	paramQuery                = "query"
	paramYear                 = "year"
	paramFirstAirDateYear     = "first_air_date_year"
	paramSearchType           = "search_type"
	paramIncludeAdult         = "include_adult"
	paramAppendToResponse     = "append_to_response"
	paramCountry              = "country"
	paramStartDate            = "start_date"
	paramEndDate              = "end_date"
	paramIncludeAllMovies     = "include_all_movies"
	paramMovieID              = "movie_id"
	paramSortBy               = "sort_by"
	paramPrimaryReleaseYear   = "primary_release_year"
	paramVoteCountGte         = "vote_count.gte"
	paramVoteAverageGte       = "vote_average.gte"
	paramWithGenres           = "with_genres"
	paramReleaseDateGte       = "release_date.gte"
	paramReleaseDateLte       = "release_date.lte"
	paramCertificationCountry = "certification_country"
	paramCertificationLte     = "certification.lte"
	paramWithCompanies        = "with_companies"
)

// request describes one endpoint call before it is turned into a URL.
// Setters drop blank values so args never holds an empty string.
type request struct {
	base     string
	segments []string
	args     map[string]string
	appendTo []string
	err      error
}

func newRequest(base string, segments ...string) *request {
	r := &request{base: strings.Trim(base, "/"), args: make(map[string]string)}
	for _, s := range segments {
		r.path(s)
	}
	return r
}

// path appends one path segment
func (r *request) path(segment string) *request {
	r.segments = append(r.segments, segment)
	return r
}

// pathInt appends a numeric path segment. Identifiers are never negative.
func (r *request) pathInt(id int) *request {
	if id < 0 && r.err == nil {
		r.err = &Error{Kind: InvalidURL, Message: "negative identifier " + strconv.Itoa(id)}
	}
	return r.path(strconv.Itoa(id))
}

// set adds a string argument; blank values are omitted
func (r *request) set(key, value string) *request {
	if strings.TrimSpace(value) == "" {
		delete(r.args, key)
		return r
	}
	r.args[key] = value
	return r
}

// setInt adds an integer argument; zero counts as unset
func (r *request) setInt(key string, value int) *request {
	if value == 0 {
		return r
	}
	return r.set(key, strconv.Itoa(value))
}

// setFloat adds a float argument; zero counts as unset
func (r *request) setFloat(key string, value float64) *request {
	if value == 0 {
		return r
	}
	return r.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// setBool adds a boolean argument, always sent
func (r *request) setBool(key string, value bool) *request {
	return r.set(key, strconv.FormatBool(value))
}

// withOptions applies the per-call options shared by most endpoints
func (r *request) withOptions(opts Options) *request {
	r.set(paramLanguage, opts.Language)
	r.setInt(paramPage, opts.Page)
	return r.appendToResponse(opts.AppendToResponse...)
}

// appendToResponse asks the server to inline the named sub-resources
func (r *request) appendToResponse(names ...string) *request {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || slices.Contains(r.appendTo, n) {
			continue
		}
		r.appendTo = append(r.appendTo, n)
	}
	return r
}

// endpoint returns the unescaped path, used in log fields
func (r *request) endpoint() string {
	return strings.Trim(strings.Join(append([]string{r.base}, r.segments...), "/"), "/")
}

// build composes the absolute request URL. The API key always comes first,
// the remaining arguments follow in key order.
func (r *request) build(baseURL, apiKey string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(baseURL, "/"))
	if r.base != "" {
		sb.WriteByte('/')
		sb.WriteString(r.base)
	}
	for _, s := range r.segments {
		if !validSegment(s) {
			return "", &Error{Kind: InvalidURL, Message: "invalid path segment " + strconv.Quote(s)}
		}
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}

	sb.WriteByte('?')
	sb.WriteString(paramAPIKey)
	sb.WriteByte('=')
	sb.WriteString(url.QueryEscape(apiKey))

	params := url.Values{}
	for k, v := range r.args {
		if k == paramAPIKey {
			continue
		}
		params.Set(k, v)
	}
	if len(r.appendTo) > 0 {
		params.Set(paramAppendToResponse, strings.Join(r.appendTo, ","))
	}
	if len(params) > 0 {
		sb.WriteByte('&')
		sb.WriteString(params.Encode())
	}

	raw := sb.String()
	u, err := url.Parse(raw)
	if err != nil {
		return "", &Error{Kind: InvalidURL, Message: raw, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return "", &Error{Kind: InvalidURL, Message: raw}
	}
	return raw, nil
}

// validSegment rejects dot segments, which PathEscape leaves intact
func validSegment(s string) bool {
	return s != "." && s != ".."
}

// redact hides the API key in a request URL for logging
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has(paramAPIKey) {
		q.Set(paramAPIKey, "***")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
