package models

// RankEntry is one row of the reputation leaderboard. VocabCount is a live
// aggregate computed at query time, never stored.
type RankEntry struct {
	AccountID       uint   `json:"account_id"`
	Username        string `json:"username"`
	ReputationScore int    `json:"reputation_score"`
	VocabCount      int    `json:"vocab_count"`
	Avatar          string `json:"avatar,omitempty"`
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked    bool `json:"liked"`
	NewCount int  `json:"new_count"`
}
