package models

// CardState is what the study client needs to place a card on the ladder.
type CardState struct {
	Step  int    `json:"step"`
	DueAt string `json:"due_at"`
}

// StudySession is the payload returned when a study session starts.
type StudySession struct {
	Deck             Deck          `json:"deck"`
	Cards            []Card        `json:"cards"`
	CurrentCard      *Card         `json:"current_card"`
	CurrentCardState CardState     `json:"current_card_state"`
	Session          ReviewSession `json:"session"`
}

// StudyCard is a card as shown to the student between answers.
type StudyCard struct {
	ID        int64  `json:"id"`
	FrontText string `json:"front_text"`
	BackText  string `json:"back_text"`
	DueAt     string `json:"due_at"`
	Step      int    `json:"step"`
}

// AnswerResult is returned after an answer has been recorded.
type AnswerResult struct {
	OK       bool       `json:"ok"`
	NextCard *StudyCard `json:"next_card"`
}
