package tmdb

// Movie is one entry of a TMDB list or search response. TV entries share the
// shape but use Name and FirstAirDate.
type Movie struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title,omitempty"`
	Name         string   `json:"name,omitempty"`
	Overview     string   `json:"overview"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	FirstAirDate string   `json:"first_air_date,omitempty"`
	VoteAverage  *float64 `json:"vote_average"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
}

type listResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}
