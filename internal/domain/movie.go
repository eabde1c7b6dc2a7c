package domain

// Movie is a film record. Year and Color are free-form strings; Duration is
// in minutes.
type Movie struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"    validate:"required"`
	Director string `json:"director" validate:"required"`
	Year     string `json:"year"     validate:"required"`
	Color    string `json:"color"    validate:"required"`
	Duration int64  `json:"duration"`
}

var movieFields = []field{
	{name: "title", kind: textField},
	{name: "director", kind: textField},
	{name: "year", kind: textField},
	{name: "color", kind: textField},
	{name: "duration", kind: integerField},
}

// ValidateMovie checks a raw movie payload and returns the normalized record.
// All five fields are required in every mode. The returned Movie has no ID.
func ValidateMovie(mode Mode, in Input) (Movie, error) {
	return validateRecord(mode, in, movieFields, func(v values) Movie {
		return Movie{
			Title:    v.text("title"),
			Director: v.text("director"),
			Year:     v.text("year"),
			Color:    v.text("color"),
			Duration: v.integer("duration"),
		}
	})
}
