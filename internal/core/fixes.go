package core

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

type FixService struct{}

func NewFixService() *FixService {
	return &FixService{}
}

// ApplyFix records a suggestion as applied and returns a confirmation message
// echoing the issue id. This is a simulation: nothing beyond the log changes.
// The reference id ties the log entry to a specific application.
func (s *FixService) ApplyFix(issueID, suggestion string) (string, error) {
	if issueID == "" || suggestion == "" {
		return "", ErrValidation
	}

	ref := uuid.NewString()
	log.Printf("Fix applied (simulated) ref=%s issueId=%s suggestion=%q", ref, issueID, suggestion)

	return fmt.Sprintf("Fix for '%s' has been successfully applied (simulated).", issueID), nil
}
