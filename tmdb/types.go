package tmdb

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// SearchType selects how search queries are matched
type SearchType string

const (
	// SearchTypePhrase matches the whole query
	SearchTypePhrase SearchType = "phrase"
	// SearchTypeNgram matches word fragments, useful for autocomplete
	SearchTypeNgram SearchType = "ngram"
)

// ArtworkType identifies the kind of an image
type ArtworkType string

const (
	ArtworkPoster   ArtworkType = "poster"
	ArtworkBackdrop ArtworkType = "backdrop"
	ArtworkProfile  ArtworkType = "profile"
	ArtworkStill    ArtworkType = "still"
	ArtworkLogo     ArtworkType = "logo"
)

var errMissingID = errors.New("missing id")

// Genre is a movie or TV genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Keyword is a tag attached to movies
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is an ISO 3166-1 country
type Country struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// Language is an ISO 639-1 language
type Language struct {
	ISO639_1 string `json:"iso_639_1"`
	Name     string `json:"name"`
}

// Company is a production company
type Company struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Headquarters  string   `json:"headquarters,omitempty"`
	Homepage      string   `json:"homepage,omitempty"`
	LogoPath      string   `json:"logo_path,omitempty"`
	OriginCountry string   `json:"origin_country,omitempty"`
	ParentCompany *Company `json:"parent_company,omitempty"`
}

func (c *Company) validate() error {
	if c.ID == 0 {
		return errMissingID
	}
	return nil
}

// Collection is a group of related movies
type Collection struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path,omitempty"`
	BackdropPath string `json:"backdrop_path,omitempty"`
}

// CollectionInfo is a collection with its member movies
type CollectionInfo struct {
	Collection
	Overview string  `json:"overview"`
	Parts    []Movie `json:"parts"`
}

func (c *CollectionInfo) validate() error {
	if c.ID == 0 {
		return errMissingID
	}
	return nil
}

// Movie is the movie record. Sub-resources requested through
// AppendToResponse are filled in when present.
type Movie struct {
	ID                  int         `json:"id"`
	IMDbID              string      `json:"imdb_id,omitempty"`
	Title               string      `json:"title"`
	OriginalTitle       string      `json:"original_title"`
	OriginalLanguage    string      `json:"original_language,omitempty"`
	Overview            string      `json:"overview"`
	Tagline             string      `json:"tagline,omitempty"`
	ReleaseDate         string      `json:"release_date"`
	Status              string      `json:"status,omitempty"`
	Homepage            string      `json:"homepage,omitempty"`
	Adult               bool        `json:"adult"`
	Video               bool        `json:"video"`
	Budget              int64       `json:"budget,omitempty"`
	Revenue             int64       `json:"revenue,omitempty"`
	Runtime             int         `json:"runtime,omitempty"`
	Popularity          float64     `json:"popularity"`
	VoteAverage         float64     `json:"vote_average"`
	VoteCount           int         `json:"vote_count"`
	PosterPath          string      `json:"poster_path,omitempty"`
	BackdropPath        string      `json:"backdrop_path,omitempty"`
	GenreIDs            []int       `json:"genre_ids,omitempty"`
	Genres              []Genre     `json:"genres,omitempty"`
	BelongsToCollection *Collection `json:"belongs_to_collection,omitempty"`
	ProductionCompanies []Company   `json:"production_companies,omitempty"`
	ProductionCountries []Country   `json:"production_countries,omitempty"`
	SpokenLanguages     []Language  `json:"spoken_languages,omitempty"`
	Rating              float64     `json:"rating,omitempty"`

	AlternativeTitles *AlternativeTitles      `json:"alternative_titles,omitempty"`
	Credits           *Credits                `json:"credits,omitempty"`
	Images            *Images                 `json:"images,omitempty"`
	Keywords          *MovieKeywords          `json:"keywords,omitempty"`
	Releases          *Releases               `json:"releases,omitempty"`
	Trailers          *Trailers               `json:"trailers,omitempty"`
	Translations      *Translations           `json:"translations,omitempty"`
	Similar           *SimilarMovies          `json:"similar,omitempty"`
	Reviews           *ResultsList[Review]    `json:"reviews,omitempty"`
	Lists             *ResultsList[MovieList] `json:"lists,omitempty"`
}

func (m *Movie) validate() error {
	if m.ID == 0 {
		return errMissingID
	}
	return nil
}

// Year returns the release year, or "" when the release date is unusable
func (m *Movie) Year() string {
	y, _ := yearOf(m.ReleaseDate)
	return y
}

// HasGenre reports whether the movie carries the named genre, case-insensitively
func (m *Movie) HasGenre(name string) bool {
	return slices.ContainsFunc(m.Genres, func(g Genre) bool {
		return strings.EqualFold(g.Name, name)
	})
}

// SimilarMovies is the similar sub-resource
type SimilarMovies struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// AlternativeTitle is a title used in a given country
type AlternativeTitle struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Title     string `json:"title"`
}

// AlternativeTitles is the alternative_titles sub-resource
type AlternativeTitles struct {
	ID     int                `json:"id"`
	Titles []AlternativeTitle `json:"titles"`
}

func (a *AlternativeTitles) items() []AlternativeTitle { return a.Titles }
func (a *AlternativeTitles) pagination() pageInfo { return unpaged(len(a.Titles)) }

// CastMember is an acting credit
type CastMember struct {
	ID          int    `json:"id"`
	CastID      int    `json:"cast_id,omitempty"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// CrewMember is a production credit
type CrewMember struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits holds cast and crew of a movie, series or episode
type Credits struct {
	ID         int          `json:"id"`
	Cast       []CastMember `json:"cast"`
	Crew       []CrewMember `json:"crew"`
	GuestStars []CastMember `json:"guest_stars,omitempty"`
}

// Directors returns the crew members credited with the Director job
func (c *Credits) Directors() []CrewMember {
	var out []CrewMember
	for _, m := range c.Crew {
		if m.Job == "Director" {
			out = append(out, m)
		}
	}
	return out
}

// castEnvelope projects the cast of a credits response into a list
type castEnvelope struct {
	Credits
}

func (c *castEnvelope) items() []CastMember { return c.Cast }
func (c *castEnvelope) pagination() pageInfo { return unpaged(len(c.Cast)) }

// Artwork is a single image
type Artwork struct {
	FilePath    string      `json:"file_path"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	AspectRatio float64     `json:"aspect_ratio"`
	ISO639_1    string      `json:"iso_639_1,omitempty"`
	VoteAverage float64     `json:"vote_average"`
	VoteCount   int         `json:"vote_count"`
	Type        ArtworkType `json:"-"`
}

// Images is the images sub-resource, grouped by kind
type Images struct {
	ID        int       `json:"id"`
	Backdrops []Artwork `json:"backdrops,omitempty"`
	Posters   []Artwork `json:"posters,omitempty"`
	Profiles  []Artwork `json:"profiles,omitempty"`
	Stills    []Artwork `json:"stills,omitempty"`
	Logos     []Artwork `json:"logos,omitempty"`
}

// All flattens the groups into one list with Type set on every entry
func (i *Images) All() []Artwork {
	var out []Artwork
	add := func(list []Artwork, t ArtworkType) {
		for _, a := range list {
			a.Type = t
			out = append(out, a)
		}
	}
	add(i.Posters, ArtworkPoster)
	add(i.Backdrops, ArtworkBackdrop)
	add(i.Profiles, ArtworkProfile)
	add(i.Stills, ArtworkStill)
	add(i.Logos, ArtworkLogo)
	return out
}

func (i *Images) items() []Artwork { return i.All() }
func (i *Images) pagination() pageInfo { return unpaged(len(i.All())) }

// MovieKeywords is the keywords sub-resource
type MovieKeywords struct {
	ID       int       `json:"id"`
	Keywords []Keyword `json:"keywords"`
}

func (k *MovieKeywords) items() []Keyword { return k.Keywords }
func (k *MovieKeywords) pagination() pageInfo { return unpaged(len(k.Keywords)) }

// ReleaseInfo is a per-country release with its certification
type ReleaseInfo struct {
	ISO3166_1     string `json:"iso_3166_1"`
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Primary       bool   `json:"primary"`
}

// Releases is the releases sub-resource
type Releases struct {
	ID        int           `json:"id"`
	Countries []ReleaseInfo `json:"countries"`
}

func (r *Releases) items() []ReleaseInfo { return r.Countries }
func (r *Releases) pagination() pageInfo { return unpaged(len(r.Countries)) }

// Trailer is a video hosted on an external site
type Trailer struct {
	Name    string `json:"name"`
	Size    string `json:"size"`
	Source  string `json:"source"`
	Type    string `json:"type"`
	Website string `json:"-"`
}

// Trailers is the trailers sub-resource, grouped by hosting site
type Trailers struct {
	ID        int       `json:"id"`
	QuickTime []Trailer `json:"quicktime"`
	YouTube   []Trailer `json:"youtube"`
}

func (t *Trailers) items() []Trailer {
	out := make([]Trailer, 0, len(t.QuickTime)+len(t.YouTube))
	for _, tr := range t.QuickTime {
		tr.Website = "quicktime"
		out = append(out, tr)
	}
	for _, tr := range t.YouTube {
		tr.Website = "youtube"
		out = append(out, tr)
	}
	return out
}

func (t *Trailers) pagination() pageInfo {
	return unpaged(len(t.QuickTime) + len(t.YouTube))
}

// Translation is a language the record is translated into
type Translation struct {
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// Translations is the translations sub-resource
type Translations struct {
	ID           int           `json:"id"`
	Translations []Translation `json:"translations"`
}

func (t *Translations) items() []Translation { return t.Translations }
func (t *Translations) pagination() pageInfo { return unpaged(len(t.Translations)) }

// Review is a user review of a movie
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// MovieList is a user curated list as it appears in listings
type MovieList struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	FavoriteCount int    `json:"favorite_count"`
	ItemCount     int    `json:"item_count"`
	ISO639_1      string `json:"iso_639_1,omitempty"`
	PosterPath    string `json:"poster_path,omitempty"`
	ListType      string `json:"list_type,omitempty"`
}

// ListDetail is a user curated list with its items
type ListDetail struct {
	MovieList
	CreatedBy string  `json:"created_by"`
	Items     []Movie `json:"items"`
}

func (l *ListDetail) validate() error {
	if l.ID == "" {
		return errMissingID
	}
	return nil
}

// Person is a cast or crew member
type Person struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Biography    string   `json:"biography,omitempty"`
	Birthday     string   `json:"birthday,omitempty"`
	Deathday     string   `json:"deathday,omitempty"`
	PlaceOfBirth string   `json:"place_of_birth,omitempty"`
	ProfilePath  string   `json:"profile_path,omitempty"`
	IMDbID       string   `json:"imdb_id,omitempty"`
	Homepage     string   `json:"homepage,omitempty"`
	Adult        bool     `json:"adult"`
	Popularity   float64  `json:"popularity"`
	AlsoKnownAs  []string `json:"also_known_as,omitempty"`
	KnownFor     []Movie  `json:"known_for,omitempty"`

	Credits *PersonCredits `json:"credits,omitempty"`
	Images  *Images        `json:"images,omitempty"`
}

func (p *Person) validate() error {
	if p.ID == 0 {
		return errMissingID
	}
	return nil
}

// PersonCredit is one movie or series a person worked on
type PersonCredit struct {
	ID            int    `json:"id"`
	CreditID      string `json:"credit_id"`
	MediaType     string `json:"media_type,omitempty"`
	Title         string `json:"title,omitempty"`
	OriginalTitle string `json:"original_title,omitempty"`
	Name          string `json:"name,omitempty"`
	Character     string `json:"character,omitempty"`
	Department    string `json:"department,omitempty"`
	Job           string `json:"job,omitempty"`
	ReleaseDate   string `json:"release_date,omitempty"`
	PosterPath    string `json:"poster_path,omitempty"`
	Adult         bool   `json:"adult"`
}

// PersonCredits groups a person's acting and crew work
type PersonCredits struct {
	ID   int            `json:"id"`
	Cast []PersonCredit `json:"cast"`
	Crew []PersonCredit `json:"crew"`
}

// Network is a TV broadcaster
type Network struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TVSeries is the TV series record
type TVSeries struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	OriginalName     string     `json:"original_name"`
	Overview         string     `json:"overview"`
	FirstAirDate     string     `json:"first_air_date"`
	LastAirDate      string     `json:"last_air_date,omitempty"`
	Status           string     `json:"status,omitempty"`
	Homepage         string     `json:"homepage,omitempty"`
	InProduction     bool       `json:"in_production"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	EpisodeRunTime   []int      `json:"episode_run_time,omitempty"`
	Popularity       float64    `json:"popularity"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	PosterPath       string     `json:"poster_path,omitempty"`
	BackdropPath     string     `json:"backdrop_path,omitempty"`
	OriginCountry    []string   `json:"origin_country,omitempty"`
	Languages        []string   `json:"languages,omitempty"`
	GenreIDs         []int      `json:"genre_ids,omitempty"`
	Genres           []Genre    `json:"genres,omitempty"`
	Networks         []Network  `json:"networks,omitempty"`
	CreatedBy        []Person   `json:"created_by,omitempty"`
	Seasons          []TVSeason `json:"seasons,omitempty"`

	Credits     *Credits     `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
}

func (s *TVSeries) validate() error {
	if s.ID == 0 {
		return errMissingID
	}
	return nil
}

// TVSeason is one season of a series
type TVSeason struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Overview     string      `json:"overview,omitempty"`
	AirDate      string      `json:"air_date,omitempty"`
	SeasonNumber int         `json:"season_number"`
	EpisodeCount int         `json:"episode_count,omitempty"`
	PosterPath   string      `json:"poster_path,omitempty"`
	Episodes     []TVEpisode `json:"episodes,omitempty"`

	Credits     *Credits     `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
}

// TVEpisode is one episode of a season
type TVEpisode struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Overview      string       `json:"overview,omitempty"`
	AirDate       string       `json:"air_date,omitempty"`
	SeasonNumber  int          `json:"season_number"`
	EpisodeNumber int          `json:"episode_number"`
	StillPath     string       `json:"still_path,omitempty"`
	VoteAverage   float64      `json:"vote_average"`
	VoteCount     int          `json:"vote_count"`
	Crew          []CrewMember `json:"crew,omitempty"`
	GuestStars    []CastMember `json:"guest_stars,omitempty"`

	Credits     *Credits     `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
}

// ExternalIDs links a record to other databases
type ExternalIDs struct {
	ID          int    `json:"id"`
	IMDbID      string `json:"imdb_id,omitempty"`
	FreebaseID  string `json:"freebase_id,omitempty"`
	FreebaseMID string `json:"freebase_mid,omitempty"`
	TVDBID      int    `json:"tvdb_id,omitempty"`
	TVRageID    int    `json:"tvrage_id,omitempty"`
}

// Account is the user behind a session
type Account struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	IncludeAdult bool   `json:"include_adult"`
	ISO639_1     string `json:"iso_639_1,omitempty"`
	ISO3166_1    string `json:"iso_3166_1,omitempty"`
}

func (a *Account) validate() error {
	if a.ID == 0 {
		return errMissingID
	}
	return nil
}

// StatusCode is the acknowledgement returned by write operations
type StatusCode struct {
	Code    int    `json:"status_code"`
	Message string `json:"status_message"`
}

func (s *StatusCode) validate() error {
	if s.Code == 0 {
		return errors.New("missing status_code")
	}
	return nil
}

// String returns the string representation of a StatusCode
func (s StatusCode) String() string {
	return fmt.Sprintf("%d: %s", s.Code, s.Message)
}

// TokenAuthorisation is a request token awaiting user approval
type TokenAuthorisation struct {
	Success      bool   `json:"success"`
	ExpiresAt    string `json:"expires_at"`
	RequestToken string `json:"request_token"`
}

// Validate fails with AuthorizationFailure when the token cannot be exchanged for a session
func (t *TokenAuthorisation) Validate() error {
	if t == nil || !t.Success {
		return newError(AuthorizationFailure, "authorisation token was not granted", nil)
	}
	if t.RequestToken == "" {
		return newError(AuthorizationFailure, "authorisation token is empty", nil)
	}
	return nil
}

// TokenSession is an authenticated or guest session
type TokenSession struct {
	Success        bool   `json:"success"`
	SessionID      string `json:"session_id,omitempty"`
	GuestSessionID string `json:"guest_session_id,omitempty"`
	ExpiresAt      string `json:"expires_at,omitempty"`
}

// ID returns the session identifier, whichever kind it is
func (t *TokenSession) ID() string {
	if t.SessionID != "" {
		return t.SessionID
	}
	return t.GuestSessionID
}

// ChangedItem is a single edit in a change log. The shape of Value depends
// on the changed field, so it is kept undecoded.
type ChangedItem struct {
	ID       string          `json:"id"`
	Action   string          `json:"action"`
	Time     string          `json:"time"`
	ISO639_1 string          `json:"iso_639_1,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// DecodeValue decodes Value into v. A shape mismatch is a MappingFailed
// error carrying the raw value.
func (c *ChangedItem) DecodeValue(v any) error {
	return c.DecodeValueWith(DefaultCodec, v)
}

// DecodeValueWith is DecodeValue using the given codec
func (c *ChangedItem) DecodeValueWith(codec Codec, v any) error {
	if len(c.Value) == 0 {
		return mappingError(nil, fmt.Errorf("change %s has no value", c.ID))
	}
	return decode(codec, c.Value, v)
}

type changeSet struct {
	Changes []struct {
		Key   string        `json:"key"`
		Items []ChangedItem `json:"items"`
	} `json:"changes"`
}

// ChangedMedia is an entry of the global change lists
type ChangedMedia struct {
	ID    int  `json:"id"`
	Adult bool `json:"adult"`
}

// JobDepartment lists the jobs of one crew department
type JobDepartment struct {
	Department string   `json:"department"`
	Jobs       []string `json:"job_list"`
}

type jobList struct {
	Jobs []JobDepartment `json:"jobs"`
}

func (j *jobList) items() []JobDepartment { return j.Jobs }
func (j *jobList) pagination() pageInfo { return unpaged(len(j.Jobs)) }

type genreList struct {
	Genres []Genre `json:"genres"`
}

func (g *genreList) items() []Genre { return g.Genres }
func (g *genreList) pagination() pageInfo { return unpaged(len(g.Genres)) }

// ImageConfig describes where images are served and in which sizes
type ImageConfig struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// Configuration is the server side configuration fetched on client creation
type Configuration struct {
	Images     ImageConfig `json:"images"`
	ChangeKeys []string    `json:"change_keys"`
}

func (c *Configuration) validate() error {
	if c.Images.BaseURL == "" && c.Images.SecureBaseURL == "" {
		return errors.New("missing images.base_url")
	}
	return nil
}

// IsValidSize reports whether size appears in any of the image size lists
func (c *Configuration) IsValidSize(size string) bool {
	if size == "" {
		return false
	}
	for _, sizes := range [][]string{
		c.Images.BackdropSizes,
		c.Images.LogoSizes,
		c.Images.PosterSizes,
		c.Images.ProfileSizes,
		c.Images.StillSizes,
	} {
		if slices.Contains(sizes, size) {
			return true
		}
	}
	return false
}
