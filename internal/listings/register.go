// Package listings declares the tables of the kinohod listings dataset:
// cinema networks, cinemas and halls, movies and their people, seances,
// cities and subway stations, media and the lookup tables around them.
//
// Rows are written by an external ingestion process keyed by the API's
// domain ids (the *_id columns). Every table also carries a synthetic id.
// Foreign keys that point at a domain id rely on that column being unique,
// so each referenced domain id is declared unique.
package listings

import "github.com/Ponloe/kinohod-store/internal/catalog"

// Register adds every listings table to r, parents before children, along
// with the cross-references that are matched by raw id only.
func Register(r *catalog.Registry) {
	r.Register(
		&NetworkInfo{},
		&City{},
		&SubwayStation{},
		&Location{},
		&Image{},
		&Video{},
		&Phone{},
		&Goodies{},
		&Cinema{},
		&Hall{},
		&PhotoCinema{},
		&Distributor{},
		&Genre{},
		&Company{},
		&Actor{},
		&Producer{},
		&Director{},
		&Movie{},
		&Language{},
		&Seance{},
		&Format{},
		&SeanceFormat{},
		&Source{},
		&SourceEntityInfo{},

		&MovieGenre{},
		&MovieCompany{},
		&MovieActor{},
		&MovieProducer{},
		&MovieDirector{},
		&MovieCountry{},
		&CinemaGoodies{},
		&SubwayStationCinema{},
	)

	r.Reference("cinemas", "location", "locations", "cinema_id", "cinema coordinates")
	r.Reference("cinemas", "photo", "images", "cinema_id", "cinema photo")
	r.Reference("cinemas", "phones", "phones", "cinema_id", "cinema phone numbers")
	r.Reference("cities", "location", "locations", "city_id", "city coordinates")
	r.Reference("subwaystations", "location", "locations", "subway_id", "station coordinates")
	r.Reference("locations", "cinema_id", "cinemas", "cinema_id", "")
	r.Reference("locations", "city_id", "cities", "city_id", "")
	r.Reference("locations", "subway_id", "subwaystations", "subway_id", "")
	r.Reference("phones", "cinema_id", "cinemas", "cinema_id", "")
	r.Reference("images", "cinema_id", "cinemas", "cinema_id", "")
	r.Reference("images", "movie_id", "movies", "movie_id", "")
	r.Reference("movies", "trailers", "videos", "trailer_id", "movie trailers")
	r.Reference("movies", "images", "images", "image_movie_id", "movie stills")
	r.Reference("movies", "poster", "images", "poster_movie_id", "portrait poster")
	r.Reference("movies", "poster_landscape", "images", "poster_land_movie_id", "landscape poster")
	r.Reference("videos", "filename", "images", "video_id", "video preview")
	r.Reference("seances", "subtitle_id", "languages", "id", "subtitle language")
	r.Reference("seances", "formats", "seance_format", "seance_id", "seance format set")
	r.Reference("seance_format", "format_name", "formats", "format_name", "")
}

// NewRegistry returns a registry holding every listings table.
func NewRegistry() *catalog.Registry {
	r := catalog.New()
	Register(r)
	return r
}
