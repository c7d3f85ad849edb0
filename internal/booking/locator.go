package booking

import "github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"

// LocateShow finds the show with the given id inside a movie's date buckets.
// Show ids are unique within a movie, so the first match wins. The returned
// path addresses the show for the conditional update so the write never has
// to re-derive it by scanning. Pure in-memory lookup, no I/O. ok is false
// when the movie has no such show.
func LocateShow(m *model.Movie, showID string) (model.ShowPath, *model.Show, bool) {
	for date, shows := range m.Shows {
		for i := range shows {
			if shows[i].ID == showID {
				return model.ShowPath{Date: date, Index: i}, &shows[i], true
			}
		}
	}
	return model.ShowPath{}, nil, false
}
