package tmdb

import "context"

// TVService covers the tv/* endpoints for series, seasons and episodes
type TVService struct {
	c *Client
}

func seriesRequest(id int) *request {
	return newRequest("tv").pathInt(id)
}

func seasonRequest(id, season int) *request {
	return seriesRequest(id).path("season").pathInt(season)
}

func episodeRequest(id, season, episode int) *request {
	return seasonRequest(id, season).path("episode").pathInt(episode)
}

// Get retrieves a series
func (s *TVService) Get(ctx context.Context, id int, opts Options) (*TVSeries, error) {
	var tv TVSeries
	if err := s.c.get(ctx, seriesRequest(id).withOptions(opts), &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// Credits lists the cast of a series
func (s *TVService) Credits(ctx context.Context, id int, opts Options) (*ResultsList[CastMember], error) {
	return getList[CastMember](ctx, s.c, seriesRequest(id).path("credits").withOptions(opts), &castEnvelope{})
}

// ExternalIDs retrieves the ids of a series in other databases
func (s *TVService) ExternalIDs(ctx context.Context, id int, opts Options) (*ExternalIDs, error) {
	return s.externalIDs(ctx, seriesRequest(id), opts)
}

// Images lists the posters and backdrops of a series
func (s *TVService) Images(ctx context.Context, id int, opts Options) (*ResultsList[Artwork], error) {
	return getList[Artwork](ctx, s.c, seriesRequest(id).path("images").withOptions(opts), &Images{})
}

// Season retrieves a season with its episodes
func (s *TVService) Season(ctx context.Context, id, season int, opts Options) (*TVSeason, error) {
	var ts TVSeason
	if err := s.c.get(ctx, seasonRequest(id, season).withOptions(opts), &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// SeasonExternalIDs retrieves the ids of a season in other databases
func (s *TVService) SeasonExternalIDs(ctx context.Context, id, season int, opts Options) (*ExternalIDs, error) {
	return s.externalIDs(ctx, seasonRequest(id, season), opts)
}

// SeasonImages lists the posters of a season
func (s *TVService) SeasonImages(ctx context.Context, id, season int, opts Options) (*ResultsList[Artwork], error) {
	r := seasonRequest(id, season).path("images").withOptions(opts)
	return getList[Artwork](ctx, s.c, r, &Images{})
}

// Episode retrieves an episode
func (s *TVService) Episode(ctx context.Context, id, season, episode int, opts Options) (*TVEpisode, error) {
	var te TVEpisode
	if err := s.c.get(ctx, episodeRequest(id, season, episode).withOptions(opts), &te); err != nil {
		return nil, err
	}
	return &te, nil
}

// EpisodeCredits lists the cast of an episode
func (s *TVService) EpisodeCredits(ctx context.Context, id, season, episode int, opts Options) (*ResultsList[CastMember], error) {
	r := episodeRequest(id, season, episode).path("credits").withOptions(opts)
	return getList[CastMember](ctx, s.c, r, &castEnvelope{})
}

// EpisodeExternalIDs retrieves the ids of an episode in other databases
func (s *TVService) EpisodeExternalIDs(ctx context.Context, id, season, episode int, opts Options) (*ExternalIDs, error) {
	return s.externalIDs(ctx, episodeRequest(id, season, episode), opts)
}

// EpisodeImages lists the stills of an episode
func (s *TVService) EpisodeImages(ctx context.Context, id, season, episode int, opts Options) (*ResultsList[Artwork], error) {
	r := episodeRequest(id, season, episode).path("images").withOptions(opts)
	return getList[Artwork](ctx, s.c, r, &Images{})
}

func (s *TVService) externalIDs(ctx context.Context, r *request, opts Options) (*ExternalIDs, error) {
	var ids ExternalIDs
	if err := s.c.get(ctx, r.path("external_ids").withOptions(opts), &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}
