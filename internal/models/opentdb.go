package models

type OpenTDBResponse struct {
	ResponseCode int `json:"response_code"` // 0 ok, 1 not enough questions, 5 rate limited
	Results      []struct {
		Category         string   `json:"category"`
		Type             string   `json:"type"`
		Difficulty       string   `json:"difficulty"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}
