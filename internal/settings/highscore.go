package settings

// HighScoreTable maps "<ruleset>/<difficulty>" to the best score reached
type HighScoreTable map[string]int

// Key builds the table key for a ruleset and difficulty
func Key(ruleset, difficulty string) string {
	return ruleset + "/" + difficulty
}

// Best returns the stored score for key, 0 when absent
func (t HighScoreTable) Best(key string) int {
	return t[key]
}

// Submit stores score if it strictly beats the current best and reports
// whether the table changed
func (t HighScoreTable) Submit(key string, score int) bool {
	if score <= t[key] {
		return false
	}
	t[key] = score
	return true
}
