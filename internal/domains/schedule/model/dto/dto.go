package dto

type ProcessResult struct {
	Message        string `json:"message"`
	RoomsProcessed int    `json:"roomsProcessed"`
}

type CleanupResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
