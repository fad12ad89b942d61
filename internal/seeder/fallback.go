package seeder

// FallbackQuestion is a hand-written question used when the trivia
// API cannot supply enough material for the guaranteed category.
type FallbackQuestion struct {
	QuestionText string
	Correct      string
	Distractors  []string
}

var mediumFallback = []FallbackQuestion{
	{
		QuestionText: "In Morse code, which letter is represented by “–––”?",
		Correct:      "O",
		Distractors:  []string{"S", "T", "M"},
	},
	{
		QuestionText: "What is the SI unit of electrical resistance?",
		Correct:      "Ohm",
		Distractors:  []string{"Henry", "Tesla", "Siemens"},
	},
	{
		QuestionText: "Which planet in our solar system has the longest day (rotation period)?",
		Correct:      "Venus",
		Distractors:  []string{"Mercury", "Mars", "Neptune"},
	},
}

var hardFallback = []FallbackQuestion{
	{
		QuestionText: "Who coined the term “computer bug” after finding a moth in a relay?",
		Correct:      "Grace Hopper",
		Distractors:  []string{"Alan Turing", "Charles Babbage", "John von Neumann"},
	},
	{
		QuestionText: "The chemical element with atomic number 74 is better known by what name?",
		Correct:      "Tungsten",
		Distractors:  []string{"Tellurium", "Rhenium", "Iridium"},
	},
	{
		QuestionText: "Which year did the first modern Olympic Games take place?",
		Correct:      "1896",
		Distractors:  []string{"1900", "1888", "1892"},
	},
}
