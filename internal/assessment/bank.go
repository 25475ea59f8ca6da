package assessment

import "github.com/jonathan/placement-prep/internal/types"

// fallbackPool is used for any skill without its own questions.
const fallbackPool = "JavaScript"

// questionBank holds the mock questions per skill, in presentation order.
var questionBank = map[string][]types.Question{
	"JavaScript": {
		{
			ID:          "js_001",
			Type:        "MCQ",
			Difficulty:  "Medium",
			Question:    "What will be the output of: console.log(typeof null)?",
			Options:     []string{"object", "null", "undefined", "number"},
			Answer:      "object",
			Explanation: "In JavaScript, typeof null is historically 'object'. This is considered a bug in the language but cannot be fixed due to backward compatibility.",
		},
		{
			ID:          "js_002",
			Type:        "MCQ",
			Difficulty:  "Hard",
			Question:    "What is the result of [] == ![]?",
			Options:     []string{"true", "false", "TypeError", "undefined"},
			Answer:      "true",
			Explanation: "The ! operator has higher precedence, so ![] becomes false. Then [] == false is evaluated. Both are converted to numbers: 0 == 0, which is true.",
		},
	},
	"Python": {
		{
			ID:          "py_001",
			Type:        "MCQ",
			Difficulty:  "Easy",
			Question:    "Which of these is a mutable data type in Python?",
			Options:     []string{"List", "Tuple", "String", "Integer"},
			Answer:      "List",
			Explanation: "Lists can be modified after creation, while tuples, strings, and integers are immutable.",
		},
	},
	"React": {
		{
			ID:          "react_001",
			Type:        "Scenario",
			Difficulty:  "Medium",
			Question:    "A component is re-rendering too frequently. How do you optimize it?",
			Options:     []string{"useMemo/useCallback", "useState", "useEffect", "useRef"},
			Answer:      "useMemo/useCallback",
			Explanation: "useMemo and useCallback are used to memoize values and functions respectively, preventing unnecessary re-calculations and re-renders of child components that depend on them.",
		},
	},
	"System Design": {
		{
			ID:          "sd_001",
			Type:        "Scenario",
			Difficulty:  "Hard",
			Question:    "You need to design a URL shortener that handles 1M requests/sec. What is your scaling strategy?",
			Options:     []string{"NoSQL + Caching", "Single SQL DB", "Client side hashing", "Load balancer only"},
			Answer:      "NoSQL + Caching",
			Explanation: "For high-throughput read/write operations, a NoSQL database like MongoDB or Cassandra paired with a caching layer like Redis is the standard architecture.",
		},
	},
}

// poolFor returns the questions for skill, falling back to the JavaScript pool.
func poolFor(skill string) []types.Question {
	if pool, ok := questionBank[skill]; ok {
		return pool
	}
	return questionBank[fallbackPool]
}
