package tvmaze

// Show is one entry of the TVMaze /shows listing. Search responses wrap it as
// {"score": ..., "show": Show}.
type Show struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Premiered *string `json:"premiered"`
	Summary   *string `json:"summary"`
	Rating    Rating  `json:"rating"`
	Image     *Image  `json:"image"`
}

type Rating struct {
	Average *float64 `json:"average"`
}

// Image holds the two renditions TVMaze serves for a show.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}
