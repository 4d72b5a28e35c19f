package cli

import "github.com/google/uuid"

func uniqueRunID() string {
	return uuid.New().String()
}
