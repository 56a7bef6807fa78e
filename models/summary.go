package models

// Summary is the structured result of summarization: the three report
// sections plus the full markdown the model produced.
type Summary struct {
	Introduction string `json:"introduction"`
	MainPoints   string `json:"main_points"`
	KeyTakeaways string `json:"key_takeaways"`
	Markdown     string `json:"markdown"`
	Model        string `json:"model"`
}

func (s *Summary) IsComplete() bool {
	return s != nil &&
		s.Introduction != "" &&
		s.MainPoints != "" &&
		s.KeyTakeaways != ""
}
