package domain

// Transient DTOs returned by the upstream client adapters. They are never
// persisted directly; the orchestrator converts them into summaries first.

type UserRecord struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Balance  float64  `json:"balance"`
	Games    []string `json:"games"`
}

type GameRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
}

type DownloadRecord struct {
	ID        string `json:"id"`
	SourceURL string `json:"sourceUrl"`
	Status    string `json:"status"`
	UserID    string `json:"userId"`
	GameTitle string `json:"gameTitle,omitempty"`
}

func (g GameRecord) Summary() GameSummary {
	return GameSummary{GameID: g.ID, Title: g.Title, Genre: g.Genre}
}

func (d DownloadRecord) Summary() DownloadSummary {
	return DownloadSummary{
		DownloadID: d.ID,
		SourceURL:  d.SourceURL,
		Status:     d.Status,
		GameTitle:  d.GameTitle,
	}
}
