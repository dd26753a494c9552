package applications

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Application is the persisted record of one uploaded résumé.
type Application struct {
	ID           string    `json:"id" dynamodbav:"id"`
	OriginalName string    `json:"originalName" dynamodbav:"originalName"`
	ResumeURL    string    `json:"resumeUrl" dynamodbav:"resumeUrl"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"createdAt"`
}

// NewID builds a time-prefixed identifier. The millisecond prefix keeps
// records roughly sortable by upload time, the uuid tail keeps them unique
// under concurrent uploads.
func NewID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
