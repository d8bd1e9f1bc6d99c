package domain

type RentalDuration string

const (
	Duration12h RentalDuration = "12hr"
	Duration24h RentalDuration = "24hr"
)

// Valid reports whether d is one of the two supported rental durations.
func (d RentalDuration) Valid() bool {
	return d == Duration12h || d == Duration24h
}

type Equipment struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ImageKey     string  `json:"image_key"`
	Rate12hCents int32   `json:"rate_12h_cents"`
	Rate24hCents int32   `json:"rate_24h_cents"`
	Available    bool    `json:"available"`
	CreatedOn    string  `json:"created_on"`
	DeletedOn    *string `json:"deleted_on,omitempty"`
}

// RateFor returns the per-unit rate for the given duration. Anything that is
// not Duration12h falls through to the 24-hour rate; callers validate first.
func (e *Equipment) RateFor(d RentalDuration) int32 {
	if d == Duration12h {
		return e.Rate12hCents
	}
	return e.Rate24hCents
}
