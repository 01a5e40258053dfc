package mcptools

// AddMoodInput is the input schema for the add_mood MCP tool.
type AddMoodInput struct {
	Mood  string `json:"mood" jsonschema-description:"Mood label (Very Sad, Sad, Neutral, Happy, Very Happy) or ordinal 0-4"`
	Date  string `json:"date,omitempty" jsonschema-description:"ISO date (YYYY-MM-DD), defaults to today"`
	Notes string `json:"notes,omitempty" jsonschema-description:"Free-text notes"`
}

// MoodResult is the common output format for mood tools.
type MoodResult struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Ordinal int    `json:"ordinal"`
	Notes   string `json:"notes,omitempty"`
}

// ListInput is the input schema for the list tools.
type ListInput struct {
	Limit int `json:"limit,omitempty" jsonschema-description:"Maximum number of entries to return (0 = all)"`
}

// ListMoodsOutput is the output schema for the list_moods MCP tool.
type ListMoodsOutput struct {
	Entries []MoodResult `json:"entries"`
}

// AddJournalInput is the input schema for the add_journal_entry MCP tool.
type AddJournalInput struct {
	Title   string `json:"title" jsonschema-description:"Entry title"`
	Content string `json:"content" jsonschema-description:"Entry content"`
}

// JournalResult is the common output format for journal tools.
type JournalResult struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Preview   string `json:"preview"`
}

// GetJournalInput is the input schema for the get_journal_entry MCP tool.
type GetJournalInput struct {
	ID string `json:"id" jsonschema-description:"Journal entry ID as returned by list_journal"`
}

// JournalEntryOutput is the output schema for the get_journal_entry MCP tool.
type JournalEntryOutput struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// ListJournalOutput is the output schema for the list_journal MCP tool.
type ListJournalOutput struct {
	Entries []JournalResult `json:"entries"`
}

// ExportInput is the input schema for the export tools.
type ExportInput struct {
	Path string `json:"path" jsonschema-description:"Destination file; relative paths are placed in the export directory"`
}

// ExportOutput is the output schema for the export tools.
type ExportOutput struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

// EmptyInput is the input schema for tools that take no arguments.
type EmptyInput struct{}

// CrisisResourcesOutput is the output schema for the crisis_resources MCP tool.
type CrisisResourcesOutput struct {
	CrisisLines []string `json:"crisis_lines"`
	Resources   []string `json:"resources"`
}

// AffirmationInput is the input schema for the daily_affirmation MCP tool.
type AffirmationInput struct {
	Date string `json:"date,omitempty" jsonschema-description:"ISO date (YYYY-MM-DD), defaults to today"`
}

// AffirmationOutput is the output schema for the daily_affirmation MCP tool.
type AffirmationOutput struct {
	Date        string `json:"date"`
	Affirmation string `json:"affirmation"`
}

// AnalyzeImageInput is the input schema for the analyze_image MCP tool.
type AnalyzeImageInput struct {
	Path string `json:"path" jsonschema-description:"Path to a local image file"`
}

// AnalyzeImageOutput is the output schema for the analyze_image MCP tool.
type AnalyzeImageOutput struct {
	Analysis string `json:"analysis"`
}
