package catalog

// Selection holds at most one selected setup id.
type Selection struct {
	catalog *Catalog
	id      string
}

// NewSelection returns an empty selection over c.
func NewSelection(c *Catalog) *Selection {
	return &Selection{catalog: c}
}

// Select replaces the selection with id. Ids not in the catalog are
// ignored and leave the selection unchanged; the return value reports
// whether id is now selected.
func (s *Selection) Select(id string) bool {
	if _, ok := s.catalog.Setup(id); !ok {
		return false
	}
	s.id = id
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.id = ""
}

// Selected returns the selected setup, if any.
func (s *Selection) Selected() (Setup, bool) {
	if s.id == "" {
		return Setup{}, false
	}
	return s.catalog.Setup(s.id)
}

// ID returns the selected id, or "" when nothing is selected.
func (s *Selection) ID() string {
	return s.id
}
