package domain

// Footballer is a playing squad member. All seven ratings are bounded
// to [1,99].
type Footballer struct {
	Person
	Position      string `json:"position"` // short code, e.g. "ST", "CAM"
	OverallRating int    `json:"overallRating"`
	Pace          int    `json:"pace"`
	Shooting      int    `json:"shooting"`
	Passing       int    `json:"passing"`
	Dribbling     int    `json:"dribbling"`
	Defending     int    `json:"defending"`
	Physical      int    `json:"physical"`
}

// Validate returns a ValidationError for the first out-of-range rating.
func (f Footballer) Validate() error {
	ratings := []struct {
		field string
		value int
	}{
		{"overallRating", f.OverallRating},
		{"pace", f.Pace},
		{"shooting", f.Shooting},
		{"passing", f.Passing},
		{"dribbling", f.Dribbling},
		{"defending", f.Defending},
		{"physical", f.Physical},
	}
	for _, r := range ratings {
		if !IsValidSkillRating(r.value) {
			return &ValidationError{Field: r.field, Value: int64(r.value), Min: MinSkillRating, Max: MaxSkillRating}
		}
	}
	return nil
}
