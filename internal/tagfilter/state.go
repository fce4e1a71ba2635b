package tagfilter

// State is one view's filter selection. The calendar uses Status and Tags,
// the history view only Tags.
type State struct {
	Status StatusFilter `json:"status"`
	Tags   []string     `json:"tags"`
}

// ToggleTag adds tag to the selection, or removes it when already selected.
func (s *State) ToggleTag(tag string) {
	tag = NormalizeTag(tag)
	if tag == "" {
		return
	}
	for i, t := range s.Tags {
		if t == tag {
			s.Tags = append(s.Tags[:i:i], s.Tags[i+1:]...)
			return
		}
	}
	s.Tags = append(s.Tags, tag)
}

// Clear resets the selection to show everything.
func (s *State) Clear() {
	s.Status = StatusAll
	s.Tags = nil
}

// Active reports whether any filter is narrowing the view.
func (s State) Active() bool {
	return (s.Status != "" && s.Status != StatusAll) || len(s.Tags) > 0
}
