package model

import "fmt"

// Project represents a top-level grouping of ledger transactions.
type Project struct {
	Key         string `json:"key"`
	SID         string `json:"sid" validate:"required,max=32,sid"`
	DisplayName string `json:"display_name" validate:"required,max=64"`
	Archived    bool   `json:"archived,omitempty"`
}

// SetKey sets the database key for this project.
func (p *Project) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this project.
func (p *Project) GetKey() string {
	return p.Key
}

// GenerateProjectKey generates a database key for a project using its SID.
func GenerateProjectKey(sid string) string {
	return fmt.Sprintf("%s:%s", PrefixProject, sid)
}

// NewProject creates a new project with the given parameters.
func NewProject(sid, displayName string) *Project {
	return &Project{
		Key:         GenerateProjectKey(sid),
		SID:         sid,
		DisplayName: displayName,
	}
}
